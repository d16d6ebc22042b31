package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/wolfchase/server"
)

type Server struct {
	router *way.Router
	Relay  *server.RelayServer
}

func main() {
	_ = godotenv.Load()
	cfg, err := server.ParseConfig()
	if err != nil {
		log.Fatalln(err)
	}

	s := Server{Relay: server.NewRelayServer()}
	go s.Relay.Loop()
	s.routes()

	log.Printf("relay listening on :%s", cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, s.router))
}
