package bots

import "fmt"

type SearchStats struct {
	Nodes   uint64 // positions visited
	Leaves  uint64 // depth-limit and terminal positions
	Cutoffs uint64 // nodes left early on alpha >= beta
}

func (s SearchStats) String() string {
	return fmt.Sprintf("nodes %d leaves %d cutoffs %d", s.Nodes, s.Leaves, s.Cutoffs)
}
