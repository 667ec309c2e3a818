package database

import (
	"fmt"
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/rs/zerolog/log"
)

// ConnectMemcache accepts a comma separated server list.
func ConnectMemcache(servers string) (*memcache.Client, error) {
	list := strings.Split(servers, ",")
	for i := range list {
		list[i] = strings.TrimSpace(list[i])
	}

	mc := memcache.New(list...)
	if err := mc.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping memcached at %s: %w", servers, err)
	}

	log.Info().Str("servers", servers).Msg("connected to memcached")
	return mc, nil
}
