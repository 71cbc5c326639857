package main

import (
	"log"

	"kfc-ordering/config"
	httpapi "kfc-ordering/internal/api/http"
	"kfc-ordering/internal/service"
	"kfc-ordering/internal/storage"
)

func main() {
	blobStore := initBlobStore()

	data, err := service.NewDataStore(blobStore)
	if err != nil {
		log.Fatal("Failed to initialize data store: ", err)
	}

	var publisher service.OrderEventPublisher
	if config.KafkaBroker() != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter("order-events"))
		log.Printf("order events enabled on broker %s", config.KafkaBroker())
	}

	sess := service.NewSession()
	auth := service.NewAuthService(data, sess)
	catalog := service.NewCatalogService(data)
	cart := service.NewCartService(data, sess, publisher)
	orders := service.NewOrderService(data, publisher)
	qr := service.ReceiptQRGenerator{BaseURL: config.BaseURL()}

	handler := httpapi.NewHandler(auth, catalog, cart, orders, sess, qr)
	httpapi.StartServer(config.ListenAddr(), httpapi.NewRouter(handler))
}

func initBlobStore() service.BlobStore {
	backend := config.StoreBackend()
	switch backend {
	case "redis":
		log.Println("using redis blob store")
		return storage.NewRedisStore(config.MustInitRedis())
	case "postgres":
		log.Println("using postgres blob store")
		store, err := storage.NewPostgresStore(config.MustInitPostgres())
		if err != nil {
			log.Fatal("Failed to initialize postgres store: ", err)
		}
		return store
	case "memory":
		log.Println("using in-memory blob store, state will not survive a restart")
		return storage.NewMemoryStore()
	case "file":
		log.Printf("using file blob store at %s", config.StoreFilePath())
		return storage.NewFileStore(config.StoreFilePath())
	default:
		log.Fatalf("unknown STORE_BACKEND %q", backend)
		return nil
	}
}
