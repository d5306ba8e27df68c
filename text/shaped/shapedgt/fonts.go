// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapedgt

import (
	"github.com/go-fonts/latin-modern/lmmono10italic"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
)

// defaultFamilies returns the embedded Latin Modern families.
func defaultFamilies() map[string]FamilyData {
	return map[string]FamilyData{
		"serif": {
			Regular:    lmroman10regular.TTF,
			Bold:       lmroman10bold.TTF,
			Italic:     lmroman10italic.TTF,
			BoldItalic: lmroman10bolditalic.TTF,
		},
		"sans": {
			Regular: lmsans10regular.TTF,
			Bold:    lmsans10bold.TTF,
			Italic:  lmsans10oblique.TTF,
		},
		"mono": {
			Regular: lmmono10regular.TTF,
			Italic:  lmmono10italic.TTF,
		},
	}
}
