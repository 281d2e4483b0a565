package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
	"texbillboard/common"
	"texbillboard/demo/config"
	"texbillboard/demo/gui"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := common.NewLogger(*cfg.LogConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("viewer failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	if err := gui.InitGui(); err != nil {
		return err
	}
	defer glfw.Terminate()

	ui, err := gui.NewGui(cfg, log)
	if err != nil {
		return err
	}
	log.Info("viewer started",
		zap.Stringer("filter", cfg.PropsConfig.FilterMode),
		zap.Int("planeSize", cfg.PropsConfig.PlaneSize))
	ui.Run()
	return nil
}
