package logger

import (
	"fmt"
	"net/http"

	"github.com/GlebRadaev/clubledger/internal/config"
	"github.com/GlebRadaev/clubledger/pkg/auth"
	"github.com/go-chi/chi/v5/middleware"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeLayout  = "15:04:05 02-01-2006"
	serviceName = "clubledger"
)

var logLvlMap = map[string]zapcore.Level{
	"info":  zapcore.InfoLevel,
	"error": zapcore.ErrorLevel,
	"debug": zapcore.DebugLevel,
}

// Colored levels only make sense on a terminal.
var levelEncoders = map[string]zapcore.LevelEncoder{
	"console": zapcore.CapitalColorLevelEncoder,
	"json":    zapcore.CapitalLevelEncoder,
}

// New builds the service logger described by conf. Every entry carries the
// service name.
func New(conf *config.Config, opts ...zap.Option) (*zap.Logger, error) {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}
	format := conf.LogFormat
	if format == "" {
		format = "console"
	}
	encodeLevel, ok := levelEncoders[format]
	if !ok {
		return nil, fmt.Errorf("unsupported log format: %s", conf.LogFormat)
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    encodeLevel,
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         format,
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build(append(opts, zap.Fields(zap.String("service", serviceName)))...)
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger, nil
}

func InitLogger(conf *config.Config) error {
	logger, err := New(conf)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// FromRequest returns the global logger tagged with the request id set by the
// chi RequestID middleware and the operator set by auth.AuthMiddleware.
func FromRequest(r *http.Request) *zap.Logger {
	fields := []zap.Field{zap.String("method", r.Method), zap.String("path", r.URL.Path)}
	if id := middleware.GetReqID(r.Context()); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if operatorID, ok := auth.OperatorID(r.Context()); ok {
		fields = append(fields, zap.Int("operator_id", operatorID))
	}
	return zap.L().With(fields...)
}
