package cmd

import (
	"io"
	"log"
	"os"

	"github.com/hoppxi/keylight/internal/backlight"
	"github.com/hoppxi/keylight/internal/intent"
	"github.com/hoppxi/keylight/internal/manager"
	"github.com/hoppxi/keylight/internal/sysfs"
	"github.com/spf13/cobra"
)

var Version = "0.1"

const bugAddress = "<robin@lindstream.com>"

func NewRootCmd() *cobra.Command {
	var opts *intent.Binder

	rootCmd := &cobra.Command{
		Use:     "keylight",
		Version: Version,
		Short:   "Read, set, increment, or decrement the keyboard backlight",
		Long: "keylight -- Read, set, increment, or decrement the keyboard backlight on your Macbook (Pro)\n\n" +
			"Report bugs to " + bugAddress + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past flag parsing, failures are about the device, not the usage.
			cmd.SilenceUsage = true

			settings, err := manager.Config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			backend, err := manager.Open(settings)
			if err != nil {
				return err
			}
			defer backend.Close()

			c := &backlight.Controller{
				Store: backend,
				Out:   cmd.OutOrStdout(),
				Log:   log.New(cmd.ErrOrStderr(), "keylight: ", 0),
			}
			_, err = c.Run(opts.Intent())
			return err
		},
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	opts = intent.Bind(rootCmd.Flags())
	rootCmd.Flags().String("device", sysfs.DefaultDevice, "LED class device to control (env KEYLIGHT_DEVICE)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if optErr := opts.Err(); optErr != nil {
			cmd.SilenceUsage = true
			return optErr
		}
		return err
	})

	return rootCmd
}

// run executes keylight with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
