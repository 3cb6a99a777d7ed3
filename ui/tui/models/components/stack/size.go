// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"math"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keynav/ui/tui/util"
	"github.com/toeirei/keynav/util/slicest"
)

// SizeConfig decides how much of the stack's main axis an item gets. Items
// are sized in ascending Priority order; each one sees what is left over.
type SizeConfig interface {
	Priority() int
	Calculate(model util.Model, remainingSize int, totalSize int) int
}

type staticSize struct {
	Size int
}

type variableSize struct {
	Weight      int
	totalWeight int
}

type funcSize struct {
	priority int
	fn       func(remainingSize, totalSize int) int
}

func StaticSize(size int) SizeConfig     { return &staticSize{Size: size} }
func VariableSize(weight int) SizeConfig { return &variableSize{Weight: weight} }

// FuncSize asks fn for the size every time the stack lays itself out, which
// suits items whose size follows external state.
func FuncSize(priority int, fn func(remainingSize, totalSize int) int) SizeConfig {
	return &funcSize{priority: priority, fn: fn}
}

func (sc *staticSize) Priority() int   { return 0 }
func (sc *variableSize) Priority() int { return math.MaxInt }
func (sc *funcSize) Priority() int     { return sc.priority }

func (sc *staticSize) Calculate(_ util.Model, _ int, _ int) int {
	return sc.Size
}

func (sc *variableSize) Calculate(_ util.Model, remainingSize int, _ int) int {
	if sc.totalWeight == 0 {
		return remainingSize
	}
	// size = remaining * weight / totalWeight, multiplied first to keep precision
	return (remainingSize * sc.Weight) / sc.totalWeight
}

func (sc *funcSize) Calculate(_ util.Model, remainingSize int, totalSize int) int {
	return max(sc.fn(remainingSize, totalSize), 0)
}

func (s *Model) totalSize() int {
	if s.Orientation == Horizontal {
		return s.size.Width
	}
	return s.size.Height
}

func (s *Model) calculateItemSizes() {
	totalSize := s.totalSize()
	remainingSize := max(totalSize-(s.Gap*(len(s.items)-1)), 0)

	// pointers so sorting does not reorder s.items
	sortedItems := make([]*Item, len(s.items))
	for i := range s.items {
		sortedItems[i] = &s.items[i]
	}
	slices.SortStableFunc(sortedItems, func(item1, item2 *Item) int {
		p1, p2 := item1.SizeConfig.Priority(), item2.SizeConfig.Priority()
		switch {
		case p1 < p2:
			return -1
		case p1 > p2:
			return 1
		}
		return 0
	})

	totalWeight := slicest.Reduce(s.items, func(item Item, total int) int {
		if sizeConfigV, ok := item.SizeConfig.(*variableSize); ok {
			return total + sizeConfigV.Weight
		}
		return total
	})

	for _, item := range sortedItems {
		sizeConfigV, ok := item.SizeConfig.(*variableSize)
		if ok {
			sizeConfigV.totalWeight = totalWeight
		}

		size := util.Clamp(0, item.SizeConfig.Calculate(*item.Model, remainingSize, totalSize), remainingSize)

		if ok {
			totalWeight -= sizeConfigV.Weight
		}

		remainingSize -= size
		item.oldSize = item.size
		item.size = size
	}
}

func (s *Model) updateResizedItems(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	for _, item := range s.items {
		if force || item.size != item.oldSize {
			var msg tea.WindowSizeMsg
			if s.Orientation == Horizontal {
				msg.Width = item.size
				msg.Height = s.size.Height
			} else {
				msg.Width = s.size.Width
				msg.Height = item.size
			}

			cmds = append(cmds, (*item.Model).Update(msg))
		}
	}
	return cmds
}
