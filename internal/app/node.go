package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/solidc/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/env"         //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/fingerprint" //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/manifest"    //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/solidc/internal/engine/strategy"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components is the assembled application handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			env.NodeID,
			manifest.NodeID,
			strategy.NodeID,
			fingerprint.NodeID,
			telemetry.TracerNodeID,
			fs.FinderNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	envSource, err := graft.Dep[*env.Source](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.SettingsResolver](ctx)
	if err != nil {
		return nil, err
	}

	selector, err := graft.Dep[*strategy.Selector](ctx)
	if err != nil {
		return nil, err
	}

	keys, err := graft.Dep[ports.KeyComputer](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[*fs.Finder](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, envSource, resolver, selector, keys, tracer, finder), nil
}
