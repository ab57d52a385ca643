package logger

import "go.uber.org/zap"

// New builds a zap logger for the given environment and installs it as the
// global logger returned by zap.L().
func New(env string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" || env == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
