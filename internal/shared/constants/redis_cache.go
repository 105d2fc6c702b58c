package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Festly application
// Pattern: festly:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_MEDIUM = 12 * time.Hour // 12 hours - for venue records
	TTL_STATIC_SHORT  = 6 * time.Hour  // 6 hours - for user profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for furniture catalogs
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // 1 hour - for venue listings
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for filtered searches
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for reservation lookups
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for item stock counts
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "festly"
)

// ================== VENUES MODULE ==================

const (
	CACHE_KEY_VENUES_LIST     = CACHE_PREFIX + ":venues:list"         // + :page:X:limit:Y:district:Z
	CACHE_KEY_VENUE_DETAIL    = CACHE_PREFIX + ":venues:detail:uuid:" // + venue-id
	CACHE_KEY_VENUE_RATE      = CACHE_PREFIX + ":venues:rate:uuid:"   // + venue-id
	CACHE_KEY_VENUE_SEARCH    = CACHE_PREFIX + ":venues:search"       // + :query:X:page:Y
	PATTERN_INVALIDATE_VENUES = CACHE_PREFIX + ":venues:*"
)

const (
	TTL_VENUE_LIST   = TTL_SEMI_STATIC_SHORT // 1 hour
	TTL_VENUE_DETAIL = TTL_STATIC_MEDIUM     // 12 hours
	TTL_VENUE_RATE   = TTL_STATIC_MEDIUM     // 12 hours
	TTL_VENUE_SEARCH = TTL_SEMI_STATIC_QUICK // 15 minutes
)

// ================== CATALOG MODULE ==================

const (
	CACHE_KEY_CATALOG_BY_VENUE = CACHE_PREFIX + ":catalog:venue:uuid:" // + venue-id
	CACHE_KEY_CATALOG_ITEM     = CACHE_PREFIX + ":catalog:item:uuid:"  // + item-id
	PATTERN_INVALIDATE_CATALOG = CACHE_PREFIX + ":catalog:*"
)

const (
	TTL_CATALOG_BY_VENUE = TTL_SEMI_STATIC_MEDIUM // 2 hours
	TTL_CATALOG_ITEM     = TTL_SEMI_STATIC_MEDIUM // 2 hours
)

// ================== BOOKING MODULE ==================

const (
	// One in-progress booking session per key, JSON encoded workflow state.
	// TTL comes from config (REDIS_BOOKING_SESSION_TTL), not from this file.
	CACHE_KEY_BOOKING_SESSION = CACHE_PREFIX + ":booking:session:uuid:" // + session-id

	CACHE_KEY_RESERVATION_BY_CODE = CACHE_PREFIX + ":booking:reservation:code:" // + confirmation-code
)

const (
	TTL_RESERVATION_BY_CODE = TTL_DYNAMIC_MEDIUM // 10 minutes
)

// ================== AUTH MODULE ==================

const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":auth:user:profile:uuid:" // + user-id
)

const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT // 6 hours
)

// ================== HELPER FUNCTIONS ==================

func BuildVenueListKey(page, limit int, district string) string {
	if district != "" {
		return fmt.Sprintf("%s:page:%d:limit:%d:district:%s", CACHE_KEY_VENUES_LIST, page, limit, district)
	}
	return fmt.Sprintf("%s:page:%d:limit:%d", CACHE_KEY_VENUES_LIST, page, limit)
}

func BuildVenueDetailKey(venueID string) string {
	return CACHE_KEY_VENUE_DETAIL + venueID
}

func BuildVenueRateKey(venueID string) string {
	return CACHE_KEY_VENUE_RATE + venueID
}

func BuildCatalogByVenueKey(venueID string) string {
	return CACHE_KEY_CATALOG_BY_VENUE + venueID
}

func BuildBookingSessionKey(sessionID string) string {
	return CACHE_KEY_BOOKING_SESSION + sessionID
}

func BuildReservationByCodeKey(code string) string {
	return CACHE_KEY_RESERVATION_BY_CODE + code
}
