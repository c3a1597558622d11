package main

import (
	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/cronjobs"
	"github.com/dr-lamia/med-nexus-portal/logger"
	"github.com/dr-lamia/med-nexus-portal/routes"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

func Init() {
	configuration.LoadEnv()

	var sessions storage.SessionStore
	if configuration.UseRedisSessions() {
		configuration.InitRedis()
		sessions = storage.NewRedisSessionStore()
	} else {
		sessions = storage.NewMemorySessionStore()
	}
	storage.Init(sessions)
}

func main() {
	// Perform application initialization
	Init()

	r := routes.SetupRouter()

	sweeper := cronjobs.NewSessionSweeper(storage.Consultations, storage.Sessions)
	sweeper.StartSweeperCron()

	logger.WithComponent("main").WithField("addr", configuration.Port()).Info("starting MedNexus portal API")
	if err := r.Run(configuration.Port()); err != nil {
		panic(err)
	}
}
