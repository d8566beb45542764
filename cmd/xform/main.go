// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xform renders animated cube scenes and textured 2D sprite
// scenes through the transform chains of a GL style pipeline, prints
// their matrices, and applies convolution effect chains to images.
package main

import (
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"cogentcore.org/xform/base/errors"
	"cogentcore.org/xform/base/logx"
	"cogentcore.org/xform/cmd/xform/cmd"
	"cogentcore.org/xform/config"
	"cogentcore.org/xform/effect"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is the config file that is used
// when none is given and it exists on [ConfigPaths].
const DefaultConfigFile = "xform.toml"

// ConfigPaths returns the directories that config files are looked up in.
func ConfigPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "xform"))
	}
	return paths
}

func main() {
	logx.SetDefaultLogger()
	c := config.New()
	if err := loadConfig(c, os.Args[1:]); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
	if errors.Log(newRootCmd(c).Execute()) != nil {
		os.Exit(1)
	}
}

// configFlag returns the value of the --config flag in args, ignoring
// every other flag, so that the file can be loaded before the command
// line flags are parsed on top of it.
func configFlag(args []string) string {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	file := fs.String("config", "", "")
	fs.Parse(args)
	return *file
}

// loadConfig loads the config file named by the --config flag, or the
// default config file if it exists.
func loadConfig(c *config.Config, args []string) error {
	file := configFlag(args)
	paths := ConfigPaths()
	if file == "" {
		if len(config.FindFileOnPaths(paths, DefaultConfigFile)) == 0 {
			return nil
		}
		file = DefaultConfigFile
	}
	return config.Open(c, file, paths)
}

func newRootCmd(c *config.Config) *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:           "xform",
		Short:         "Render cube scenes through 3D transform chains and apply image effects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logx.UserLevel = logx.LevelFromFlags(c.Log.VeryVerbose, c.Log.Verbose, c.Log.Quiet)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (TOML) to load before the flags; default "+DefaultConfigFile+" if it exists")
	pf.BoolVarP(&c.Log.Verbose, "verbose", "v", c.Log.Verbose, "log informational messages")
	pf.BoolVar(&c.Log.VeryVerbose, "vv", c.Log.VeryVerbose, "log debugging messages")
	pf.BoolVarP(&c.Log.Quiet, "quiet", "q", c.Log.Quiet, "log only errors")

	sceneArg := func(args []string) {
		if len(args) > 0 {
			c.Scene = args[0]
		}
	}
	sizeFlags := func(fs *pflag.FlagSet) {
		fs.IntVar(&c.Width, "width", c.Width, "image width in pixels, overriding the scene")
		fs.IntVar(&c.Height, "height", c.Height, "image height in pixels, overriding the scene")
	}
	frameFlags := func(fs *pflag.FlagSet) {
		fs.IntVar(&c.Frame, "frame", c.Frame, "animation frame")
		fs.IntVar(&c.Supersample, "supersample", c.Supersample, "render at this multiple of the size and reduce")
		sizeFlags(fs)
	}

	render := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render one frame of a scene, the built-in one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sceneArg(args)
			return cmd.Render(c)
		},
	}
	frameFlags(render.Flags())
	render.Flags().StringVarP(&c.Output, "output", "o", c.Output, "output image file")

	frames := &cobra.Command{
		Use:   "frames [scene]",
		Short: "Render consecutive frames of a scene to numbered PNG files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sceneArg(args)
			return cmd.Frames(c)
		},
	}
	frameFlags(frames.Flags())
	frames.Flags().IntVarP(&c.Frames, "count", "n", c.Frames, "number of frames; the scene's frame count when 0")
	frames.Flags().StringVarP(&c.OutputDir, "output", "o", c.OutputDir, "output directory")

	matrix := &cobra.Command{
		Use:   "matrix [scene]",
		Short: "Print the camera and model matrices of a frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			sceneArg(args)
			return cmd.Matrix(c, cc.OutOrStdout())
		},
	}
	matrix.Flags().IntVar(&c.Frame, "frame", c.Frame, "animation frame")
	sizeFlags(matrix.Flags())

	effects := &cobra.Command{
		Use:   "effects input output",
		Short: "Apply a chain of convolution effects to an image",
		Long:  "Apply a chain of convolution effects to an image. The effects are: " + strings.Join(effect.Names(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Effects(c, args[0], args[1])
		},
	}
	effects.Flags().StringSliceVarP(&c.Effects, "effects", "e", c.Effects, "effects to apply in order")
	sizeFlags(effects.Flags())

	watch := &cobra.Command{
		Use:   "watch scene",
		Short: "Render a scene file again every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			sceneArg(args)
			ctx, stop := signal.NotifyContext(cc.Context(), os.Interrupt)
			defer stop()
			return cmd.Watch(ctx, c)
		},
	}
	frameFlags(watch.Flags())
	watch.Flags().StringVarP(&c.Output, "output", "o", c.Output, "output image file")

	sprite := &cobra.Command{
		Use:   "sprite [scene]",
		Short: "Render one frame of a 2D sprite scene, the built-in one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sceneArg(args)
			return cmd.Sprite(c)
		},
	}
	sprite.Flags().IntVar(&c.Frame, "frame", c.Frame, "animation frame")
	sprite.Flags().StringVarP(&c.Texture, "texture", "t", c.Texture, "texture image file, overriding the scene")
	sprite.Flags().StringVarP(&c.Output, "output", "o", c.Output, "output image file")
	sizeFlags(sprite.Flags())

	root.AddCommand(render, frames, matrix, effects, watch, sprite)
	return root
}
