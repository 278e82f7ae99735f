// Package zerologsink provides a sink that logs through a zerolog.Logger.
package zerologsink
