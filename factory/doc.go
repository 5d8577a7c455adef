// Package factory wires named loggers to sinks.
//
// A Factory holds an ordered list of rules. Each rule pairs a regular
// expression over logger names with a threshold and a LoggerType
// (Console, MessageBuffer or Custom); the first rule matching a name
// decides how that logger is built, and names no rule matches get the
// default level and type. Handlers are built once per rule when the
// factory is created, and loggers are built and cached on first
// lookup.
//
//	f, err := factory.New(factory.Options{
//	    DefaultLevel: core.InfoLevel,
//	    Rules: []factory.Rule{
//	        {Pattern: regexp.MustCompile(`^db\.`), Level: core.DebugLevel, Type: factory.MessageBuffer},
//	    },
//	})
//	log := f.GetLogger("db.pool")
//
// Config is the YAML/environment form of Options, loaded with cleanenv:
//
//	level: warn
//	type: console
//	rules:
//	  - pattern: "^db\\."
//	    level: debug
//	    type: messagebuffer
//
// LOG_LEVEL, LOG_TYPE, LOG_TIMESTAMP_FORMAT and LOG_BUFFER_CAPACITY
// override the file.
//
// Default, SetDefault and GetLogger expose a process-wide factory for
// applications that want one; the logger package never depends on it.
package factory
