// lvmemtool is a developer testbed for the interop layer. It binds the
// in-process mock manager and exercises the handle lifecycle end to end,
// which is as far as any host-free binary can go.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
	"github.com/wiresmithtech/labview-interop-go/hostmock"
	"github.com/wiresmithtech/labview-interop-go/types"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lvmemtool",
	Short: "Testbed for the handle memory layer against the mock manager",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg = zap.NewDevelopmentConfig()
		}
		logger, err := cfg.Build()
		if err != nil {
			return err
		}
		lvinterop.SetLogger(logger)
		return nil
	},
}

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run the end-to-end handle lifecycle scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := hostmock.New()
		lvinterop.Bind(mgr)
		log := lvinterop.Logger()

		str, err := types.NewString([]byte("hello from the mock manager"))
		if err != nil {
			return err
		}
		text, err := str.StringHandle().String()
		if err != nil {
			return err
		}
		log.Info("string round trip", zap.String("value", text))

		clone, err := str.TryClone()
		if err != nil {
			return err
		}
		clone.Release()
		str.Release()

		arr, err := types.NewArray[float64](2)
		if err != nil {
			return err
		}
		if err := arr.Array().Resize(types.Dims{3, 3}); err != nil {
			return err
		}
		for i := 0; i < 9; i++ {
			if err := arr.Array().SetAt(i, float64(i)); err != nil {
				return err
			}
		}
		corner, err := arr.Array().Element(2, 2)
		if err != nil {
			return err
		}
		log.Info("array round trip", zap.Float64("corner", corner))
		arr.Release()

		stats := mgr.Stats()
		log.Info("manager stats",
			zap.Int("allocs", stats.Allocs),
			zap.Int("resizes", stats.Resizes),
			zap.Int("disposes", stats.Disposes),
			zap.Int("live", stats.Live))
		if stats.Live != 0 {
			return fmt.Errorf("leaked %d blocks", stats.Live)
		}
		fmt.Println("smoke scenario passed")
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <code>",
	Short: "Print the description for a status code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return err
		}
		lvinterop.Bind(hostmock.New())
		fmt.Println(lverrors.Describe(lvinterop.StatusCode(code)))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(smokeCmd)
	rootCmd.AddCommand(describeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
