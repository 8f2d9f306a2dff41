package core

import (
	"sort"

	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
)

// LanguageBreakdown reduces the per-repository byte-by-language maps into a
// normalized share distribution. Repository exclusions (including the fork
// flag) apply before language bytes are summed; excluded languages are
// removed from both numerator and denominator before renormalization, so
// remaining shares always sum to 1.0. A zero-byte result yields an empty
// slice, not a division fault.
func LanguageBreakdown(repos []schema.RepoRecord, cfg *contract.Config) []schema.LanguageStat {
	byteTotals := make(map[string]int64)
	for _, repo := range repos {
		if cfg.RepoExcluded(repo.FullName) {
			continue
		}
		if cfg.ExcludeForks && repo.IsFork {
			continue
		}
		for name, size := range repo.Languages {
			if cfg.LangExcluded(name) {
				continue
			}
			byteTotals[name] += size
		}
	}

	var total int64
	for _, size := range byteTotals {
		total += size
	}
	if total == 0 {
		return nil
	}

	stats := make([]schema.LanguageStat, 0, len(byteTotals))
	for name, size := range byteTotals {
		stats = append(stats, schema.LanguageStat{
			Name:  name,
			Bytes: size,
			Share: float64(size) / float64(total),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Bytes != stats[j].Bytes {
			return stats[i].Bytes > stats[j].Bytes
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}
