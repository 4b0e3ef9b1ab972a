// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/grademint/packslip/internal/pull"
	"github.com/grademint/packslip/pkg/types"
)

func fixedClock(t *testing.T) {
	t.Helper()
	now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	}
	t.Cleanup(func() { now = time.Now })
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testGroups() pull.Groups {
	return pull.Groups{
		Magic: []types.PullCard{
			{
				ProductLine: "Magic",
				SetName:     "FDN",
				Name:        "Llanowar Elves",
				Number:      "0123",
				Rarity:      "C",
				Condition:   "NM",
				Price:       "$0.25",
				Quantity:    2,
				Orders:      []string{"A1", "B2"},
			},
		},
		Misc: []types.PullCard{
			{
				ProductLine: "Yu-Gi-Oh",
				Name:        "Dark Magician",
				Number:      "001",
				Quantity:    1,
				Orders:      []string{"A1"},
			},
		},
	}
}

func TestPullSheetXLSX(t *testing.T) {
	fixedClock(t)
	dir := t.TempDir()

	path, err := PullSheetXLSX(testGroups(), dir, types.MarketplaceTCGplayer, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "TCGPlayer_PullList_03142026-0926.xlsx", filepath.Base(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Magic", "Misc"}, f.GetSheetList())

	name, err := f.GetCellValue("Magic", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Llanowar Elves", name)

	orders, err := f.GetCellValue("Magic", "I2")
	require.NoError(t, err)
	assert.Equal(t, "A1, B2", orders)

	qty, err := f.GetCellValue("Magic", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2", qty)
}

func TestPullSheetXLSXEmpty(t *testing.T) {
	path, err := PullSheetXLSX(pull.Groups{}, t.TempDir(), types.MarketplaceTCGplayer, discardLogger())
	require.NoError(t, err)
	assert.Empty(t, path)
}
