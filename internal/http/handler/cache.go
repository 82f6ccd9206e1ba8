package handler

import (
	"time"

	"backend-promo/internal/config"
)

const (
	cacheKeySponsors    = "cache:sponsors"
	cacheKeyFAQFlat     = "cache:faqs:flat"
	cacheKeyFAQGrouped  = "cache:faqs:grouped"
	cacheKeySponsorHTML = "cache:pages:sponsors"
	cacheKeyFAQHTML     = "cache:pages:faq"

	cacheTTL = 5 * time.Minute
)

func getCache(key string) (string, bool) {
	val, err := config.Redis.Get(config.Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func setCache(key, val string) {
	config.Redis.Set(config.Ctx, key, val, cacheTTL)
}

func invalidateSponsorCache() {
	config.Redis.Del(config.Ctx, cacheKeySponsors, cacheKeySponsorHTML)
}

func invalidateFAQCache() {
	config.Redis.Del(config.Ctx, cacheKeyFAQFlat, cacheKeyFAQGrouped, cacheKeyFAQHTML)
}
