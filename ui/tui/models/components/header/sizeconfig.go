// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/toeirei/keynav/ui/tui/models/components/stack"
	"github.com/toeirei/keynav/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate drops the header on terminals too short to spare two lines.
func (s *sizeConfig) Calculate(_ util.Model, _ int, totalSize int) int {
	if totalSize >= 12 {
		return 2
	}
	return 0
}
