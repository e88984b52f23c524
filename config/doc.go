// Package config loads log destination settings from YAML.
//
// A document names the destination path and optionally the output
// encoding and timestamp layout:
//
//	path: /var/log/app.log
//	encoding: ISO-8859-1
//	time_format: "2006-01-02T15:04:05.000-0700"
//
// Writer validates the loaded values and hands back a writer.Config
// ready for writer.New.
package config
