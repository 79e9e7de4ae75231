// Package bridge groups the adapters that let other logging front ends
// emit through a udplog Logger.
//
// Each subpackage maps the host framework's levels onto core.Level,
// converts its attributes into core.Field values and calls
// Logger.LogAt with the host's capture time. Level filtering and
// formatting stay in the Logger, so a line looks the same whichever
// front end produced it.
//
//   - slogbridge: a log/slog Handler
//   - zapbridge: a zapcore.Core
//   - zerologbridge: a zerolog.LevelWriter
//   - logrusbridge: a logrus.Hook
//
// None of the bridges installs itself. Callers that want a bridge to
// become the host framework's process default do so explicitly, e.g.
// slogbridge.Install or zapbridge.Install.
package bridge
