/*
 * progress.go, part of gotraj.
 *
 * Copyright 2024 The gotraj Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package progress draws progress bars on stderr for long commands.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"
)

// Bar is a progress bar over a known number of steps. A disabled Bar does nothing,
// so it can be used unconditionally.
type Bar struct {
	container *mpb.Progress
	bar       *mpb.Bar
	count     atomic.Int64
}

// New returns a bar with total steps labeled with name. The bar is only drawn if
// enabled is true and stderr is a terminal.
func New(total int, name string, enabled bool) *Bar {
	if !enabled || !isTerminal() {
		return &Bar{}
	}
	return newBar(os.Stderr, total, name)
}

func newBar(w io.Writer, total int, name string) *Bar {
	B := &Bar{}
	B.container = mpb.New(
		mpb.WithOutput(w),
		mpb.WithWidth(64),
		mpb.WithRefreshRate(100*time.Millisecond),
		mpb.WithAutoRefresh(),
	)
	B.bar = B.container.New(int64(total),
		mpb.BarStyle().Lbound("[").Filler("█").Tip("█").Padding("░").Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{C: decor.DindentRight}),
			decor.CountersNoUnit("%d/%d", decor.WC{C: decor.DindentRight}),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)
	return B
}

// Increment advances the bar by one step. Safe for concurrent use.
func (B *Bar) Increment() {
	B.count.Add(1)
	if B.bar != nil {
		B.bar.Increment()
	}
}

// Count returns the number of steps done so far.
func (B *Bar) Count() int {
	return int(B.count.Load())
}

// Finish stops the bar and waits for its last redraw. The bar is aborted
// if it didn't reach its total.
func (B *Bar) Finish() {
	if B.container == nil {
		return
	}
	if !B.bar.Completed() {
		B.bar.Abort(false)
	}
	B.container.Wait()
	fmt.Fprintln(os.Stderr)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
