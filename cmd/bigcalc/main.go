// Command bigcalc is a small CLI front end over pkg/bigint and
// pkg/modarith: arbitrary-precision arithmetic and base conversion,
// plus fixed-width modular arithmetic and primality testing.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hun756/biginteger/pkg/bigint"
	"github.com/hun756/biginteger/pkg/modarith"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision arithmetic and modular arithmetic calculator",
	}

	rootCmd.AddCommand(
		newAddCmd(),
		newSubCmd(),
		newMulCmd(),
		newDivCmd(),
		newConvertCmd(),
		newGCDCmd(),
		newModPowCmd(),
		newIsPrimeCmd(),
		newBatchIsPrimeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseOperands(args []string) (bigint.BigInt, bigint.BigInt, error) {
	a, err := bigint.Parse(args[0], 0)
	if err != nil {
		return bigint.BigInt{}, bigint.BigInt{}, fmt.Errorf("operand %q: %w", args[0], err)
	}
	b, err := bigint.Parse(args[1], 0)
	if err != nil {
		return bigint.BigInt{}, bigint.BigInt{}, fmt.Errorf("operand %q: %w", args[1], err)
	}
	return a, b, nil
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add a b",
		Short: "Print a + b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Println(a.Add(b))
			return nil
		},
	}
}

func newSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub a b",
		Short: "Print a - b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Println(a.Sub(b))
			return nil
		},
	}
}

func newMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul a b",
		Short: "Print a * b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Println(a.Mul(b))
			return nil
		},
	}
}

func newDivCmd() *cobra.Command {
	var mod bool
	cmd := &cobra.Command{
		Use:   "div a b",
		Short: "Print a / b, or a % b with --mod",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			q, r, err := a.DivMod(b)
			if err != nil {
				return err
			}
			if mod {
				fmt.Println(r)
			} else {
				fmt.Println(q)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&mod, "mod", false, "print the remainder instead of the quotient")
	return cmd
}

func newConvertCmd() *cobra.Command {
	var toBase int
	cmd := &cobra.Command{
		Use:   "convert n",
		Short: "Parse n (base auto-detected) and render it in --to-base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := bigint.Parse(args[0], 0)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			s, err := v.ToBase(toBase)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
	cmd.Flags().IntVar(&toBase, "to-base", 10, "target base: 2, 8, 10, or 16")
	return cmd
}

func newGCDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd a b",
		Short: "Print gcd(a, b)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Println(bigint.GCD(a, b))
			return nil
		},
	}
}

func newModPowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modpow base exp mod",
		Short: "Print base^exp mod m (fixed-width, via pkg/modarith)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("base: %w", err)
			}
			exp, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("exp: %w", err)
			}
			m, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("mod: %w", err)
			}
			fmt.Println(modarith.ModPow(base, exp, m))
			return nil
		},
	}
}

func newIsPrimeCmd() *cobra.Command {
	var rounds int
	var cachePath string
	cmd := &cobra.Command{
		Use:   "isprime n",
		Short: "Report whether n is a Miller-Rabin probable prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("n: %w", err)
			}
			if cachePath == "" {
				fmt.Println(modarith.IsProbablePrime(n, rounds))
				return nil
			}

			cache, err := modarith.LoadCache(cachePath)
			if err != nil {
				cache = modarith.NewCache()
			}
			fmt.Println(cache.IsProbablePrime(n, rounds))
			return cache.Save(cachePath)
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", modarith.DefaultRounds, "number of Miller-Rabin rounds")
	cmd.Flags().StringVar(&cachePath, "cache", "", "persist verdicts to this file across invocations")
	return cmd
}

func newBatchIsPrimeCmd() *cobra.Command {
	var rounds, workers int
	cmd := &cobra.Command{
		Use:   "batch-isprime n...",
		Short: "Check primality of multiple numbers concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := make([]int64, len(args))
			for i, s := range args {
				n, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return fmt.Errorf("argument %q: %w", s, err)
				}
				ns[i] = n
			}
			for _, r := range modarith.BatchIsProbablePrime(ns, rounds, workers) {
				fmt.Printf("%d: %v\n", r.N, r.Prime)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", modarith.DefaultRounds, "number of Miller-Rabin rounds")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = runtime.NumCPU())")
	return cmd
}
