package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// Client nil olabilir: Redis'e ulaşılamazsa cache tamamen devre dışı kalır,
// uygulama veritabanıyla çalışmaya devam eder.
var Client *redis.Client

func Init(addr string) {
	if addr == "" {
		log.Println("REDIS_ADDR tanımlı değil, cache devre dışı")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := Client.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Redis'e bağlanılamadı: %v. Cache devre dışı.", err)
		Client = nil
		return
	}

	log.Println("Redis bağlantısı başarılı:", addr)
}
