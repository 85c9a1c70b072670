package usecases

import (
	"context"
	"strconv"

	"likenovel/internal/domain/content"
	"likenovel/internal/shared/logger"
)

// GetRatesUseCase reads the common_rate group as numbers. Missing or malformed entries read as 0.
type GetRatesUseCase struct {
	store  content.CommonCodeStore
	logger logger.Interface
}

func NewGetRatesUseCase(store content.CommonCodeStore, logger logger.Interface) *GetRatesUseCase {
	return &GetRatesUseCase{store: store, logger: logger}
}

func (uc *GetRatesUseCase) Execute(ctx context.Context) (map[string]float64, error) {
	codes, err := uc.store.ListGroup(ctx, content.RateCodeGroup)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]string, len(codes))
	for _, c := range codes {
		byKey[c.CodeKey] = c.CodeValue
	}

	rates := make(map[string]float64, len(content.RateKeys))
	for _, key := range content.RateKeys {
		raw, ok := byKey[key]
		if !ok {
			uc.logger.Warnw("rate not configured", "key", key)
			rates[key] = 0
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			uc.logger.Warnw("malformed rate", "key", key, "value", raw)
		}
		rates[key] = v
	}
	return rates, nil
}
