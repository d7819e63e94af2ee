package sweep

import (
	apperrors "github.com/agbru/sweepcalc/internal/errors"
)

// Generate enumerates the full, ordered job set for the given space.
//
// Generation order is nested: for each alpha (in list order), for each beta
// (in list order), for each run index in [0, Runs), one Config is emitted and
// assigned the next sequential seed starting at zero.
//
// Seeds are positional, not derived from the (alpha, beta, run) values:
// reordering or resizing Alphas, Betas, or Runs changes every subsequent seed
// and therefore every downstream scenario. That fragility is part of the
// contract; callers who need stable historical results must keep the space
// stable.
//
// Returns:
//   - []Config: the ordered job set, of length Space.Size().
//   - error: a ConfigError if the space is malformed.
func Generate(space Space) ([]Config, error) {
	if len(space.Alphas) == 0 {
		return nil, apperrors.NewConfigError("sweep space has no alpha values")
	}
	if len(space.Betas) == 0 {
		return nil, apperrors.NewConfigError("sweep space has no beta values")
	}
	if space.Runs <= 0 {
		return nil, apperrors.NewConfigError("run count must be positive, got %d", space.Runs)
	}

	configs := make([]Config, 0, space.Size())
	var seed int64
	for _, alpha := range space.Alphas {
		for _, beta := range space.Betas {
			for run := 0; run < space.Runs; run++ {
				configs = append(configs, Config{
					Alpha: alpha,
					Beta:  beta,
					Run:   run,
					Seed:  seed,
				})
				seed++
			}
		}
	}
	return configs, nil
}
