package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	connectfour "github.com/loic-ehrhardt/connect4-solver"
	"github.com/loic-ehrhardt/connect4-solver/internal/book"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Generate or inspect an opening book",
}

var (
	bookDepth   int
	bookTTSize  int
	bookOutPath string
	bookInPath  string
)

var bookGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Exhaustively evaluate every position up to a given depth and write it to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		ob, err := connectfour.NewOpeningBook(bookDepth, bookTTSize, book.WithLogger(log.Logger))
		if err != nil {
			return err
		}
		ob.Generate()
		log.Info().Int("entries", ob.Len()).Int("depth", ob.Depth()).Msg("book generated")
		return ob.Dump(bookOutPath)
	},
}

var bookInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the depth and entry count of a book file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ob, err := connectfour.NewOpeningBook(0, connectfour.DefaultTableCapacity)
		if err != nil {
			return err
		}
		if err := ob.Load(bookInPath); err != nil {
			return err
		}
		fmt.Printf("depth=%d entries=%d\n", ob.Depth(), ob.Len())
		return nil
	},
}

func init() {
	bookGenerateCmd.Flags().IntVar(&bookDepth, "depth", 12, "ply depth to exhaustively evaluate")
	bookGenerateCmd.Flags().IntVar(&bookTTSize, "ttcapacity", connectfour.DefaultTableCapacity, "transposition table capacity for leaf evaluation")
	bookGenerateCmd.Flags().StringVar(&bookOutPath, "out", "book.bin", "output file path")

	bookInfoCmd.Flags().StringVar(&bookInPath, "path", "book.bin", "book file to inspect")

	bookCmd.AddCommand(bookGenerateCmd, bookInfoCmd)
}
