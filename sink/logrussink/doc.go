// Package logrussink provides a sink that logs through a logrus.FieldLogger
// such as *logrus.Logger or *logrus.Entry.
package logrussink
