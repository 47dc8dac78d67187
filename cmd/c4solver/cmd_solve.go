package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	connectfour "github.com/loic-ehrhardt/connect4-solver"
)

var (
	solveSequence string
	solveWeak     bool
	solveTTSize   int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a position reached by a sequence of moves",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := connectfour.NewBoardFromSequence(solveSequence)
		if err != nil {
			return err
		}
		s, err := connectfour.NewSolver(solveTTSize, connectfour.WithLogger(log.Logger))
		if err != nil {
			return err
		}
		score := s.SolveDichotomic(b, solveWeak)
		log.Info().
			Uint64("explored", s.NumExplored()).
			Str("sequence", solveSequence).
			Msg("solve complete")
		fmt.Println(score)
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveSequence, "sequence", "", "column sequence (1-7 digits) from the empty position")
	solveCmd.Flags().BoolVar(&solveWeak, "weak", false, "only determine win/draw/loss, not the exact score")
	solveCmd.Flags().IntVar(&solveTTSize, "ttcapacity", connectfour.DefaultTableCapacity, "transposition table capacity")
}
