package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"fromsel/misc"
)

type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Destination string `yaml:"destination,omitempty" sanitize:"path_clean,assure_dir_exists_for_file" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// minimal enabled level per configured level name, "none" is absent
var logLevels = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"normal": zapcore.InfoLevel,
}

// Prepare returns configured zap logger for use by the program. Console
// output goes to stderr since stdout carries produced markup. When debugMode
// is set console and enabled file loggers are forced to debug level.
func (conf *LoggingConfig) Prepare(debugMode bool) (*zap.Logger, error) {
	consoleLevel, fileLevel := conf.ConsoleLogger.Level, conf.FileLogger.Level
	if debugMode {
		consoleLevel = "debug"
		if fileLevel != "none" {
			fileLevel = "debug"
		}
	}

	file, redirected, err := fileCore(conf.FileLogger, fileLevel)
	if err != nil {
		return nil, err
	}

	log := zap.New(zapcore.NewTee(consoleCore(consoleLevel), file), zap.AddCaller())
	if redirected != "" {
		log.Warn("Log file was redirected to new location", zap.String("location", redirected))
	}
	return log.Named(misc.GetAppName()), nil
}

// consoleCore splits output: errors go through encoder hiding verbose error
// details, everything below error level is written as is.
func consoleCore(level string) zapcore.Core {
	lowest, ok := logLevels[level]
	if !ok {
		return zapcore.NewNopCore()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if EnableColorOutput(os.Stderr) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	}

	out := zapcore.Lock(os.Stderr)
	return zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(ec), out, zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lowest <= lvl && lvl < zapcore.ErrorLevel
		})),
		zapcore.NewCore(consoleEnc{zapcore.NewConsoleEncoder(ec)}, out, zapcore.ErrorLevel),
	)
}

// fileCore opens log destination falling back to a temporary file, in which
// case the name of the file actually used is returned.
func fileCore(conf LoggerConfig, level string) (zapcore.Core, string, error) {
	lowest, ok := logLevels[level]
	if !ok {
		return zapcore.NewNopCore(), "", nil
	}

	captureCrashes(filepath.Dir(conf.Destination), conf.Mode)

	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	f, err := openLog(conf.Destination, conf.Mode)
	if err == nil {
		return zapcore.NewCore(enc, zapcore.Lock(f), lowest), "", nil
	}
	f, err = os.CreateTemp("", misc.GetAppName()+".*.log")
	if err != nil {
		return nil, "", fmt.Errorf("unable to access file log destination (%s): %w", conf.Destination, err)
	}
	return zapcore.NewCore(enc, zapcore.Lock(f), lowest), f.Name(), nil
}

// captureCrashes directs runtime crash output next to the log file, or to
// a temporary file. Failure is ignored.
func captureCrashes(dir, mode string) {
	f, err := openLog(filepath.Join(dir, misc.GetAppName()+"-panic.log"), mode)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-panic.*.log"); err != nil {
			return
		}
	}
	defer f.Close()
	debug.SetCrashOutput(f, debug.CrashOptions{})
}

func openLog(name, mode string) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if mode == "append" {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(name, flags, 0644)
}

// consoleEnc drops verbose details of errors, those are only useful in the
// file log.
type consoleEnc struct {
	zapcore.Encoder
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	out := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			f.Interface = errors.New(f.Interface.(error).Error())
		}
		out = append(out, f)
	}
	return c.Encoder.EncodeEntry(ent, out)
}
