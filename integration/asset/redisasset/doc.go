// Package redisasset stores lines in a Redis hash and serves them as a
// line.Asset.
//
// Each line is one hash field: the field name is the comparer fingerprint
// of its key, the value a JSON record of the key parameters with their
// kinds and the format string or resource bytes. Lookups are a single HGET
// bounded by the configured timeout; Redis errors are logged and count as a
// miss.
//
//	client, err := redis.Connect(ctx, redisCfg)
//	if err != nil {
//		return err
//	}
//	store := redisasset.NewFromConfig(client, cfg)
//	if err := store.Store(ctx, lines...); err != nil {
//		return err
//	}
//	r := resolve.New(resolve.WithAsset(asset.NewCache(store)))
package redisasset
