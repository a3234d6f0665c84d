package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/assetx/rwa-storage/internal/appinit"
	"github.com/assetx/rwa-storage/internal/controller"
	"github.com/assetx/rwa-storage/internal/service"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	var configPath string

	serveFunc := getServeFunc(&configPath)

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:    "serve",
				Aliases: []string{"s"},
				Usage:   "Start as server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "conf",
						Aliases:     []string{"c"},
						Value:       "serve.yaml",
						EnvVars:     []string{"RWA_STORAGE_CONF"},
						Destination: &configPath,
					},
				},
				Action: serveFunc,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func getServeFunc(configPath *string) func(c *cli.Context) error {
	serveFunc := func(c *cli.Context) error {
		// Load serve info from `serve.yaml`
		serverInfo, err := appinit.LoadServerInfo(*configPath)
		if err != nil {
			return err
		}

		if err := appinit.ApplyLogLevel(serverInfo.LogLevel); err != nil {
			return err
		}

		// Create the chain clients and the storage gateway
		components, err := appinit.InitApp(&serverInfo)
		if err != nil {
			return err
		}

		// Instantiate the services
		serviceInfo := &service.Info{
			Registry:              components.Registry,
			Gateway:               components.Gateway,
			Quoter:                components.Quoter,
			LocalChainID:          serverInfo.ChainID,
			FeeTokenAddress:       components.Network.FeeToken,
			StorageManagerAddress: components.Network.StorageManager,
			SignerAddress:         components.SignerAddress,
		}

		nameResolverSvc := &service.NameResolverService{ServiceInfo: serviceInfo}

		storageSvc := &service.StorageService{
			ServiceInfo:  serviceInfo,
			NameResolver: nameResolverSvc,
		}

		binderSvc := &service.BinderService{ServiceInfo: serviceInfo}

		objectSvc := &service.ObjectService{
			ServiceInfo:  serviceInfo,
			NameResolver: nameResolverSvc,
			Storage:      storageSvc,
			Binder:       binderSvc,
		}

		reconcileSvc := &service.ReconcileService{
			ServiceInfo:  serviceInfo,
			NameResolver: nameResolverSvc,
		}

		// Instantiate the controllers
		pingPongController := &controller.PingPongController{}

		objectController := &controller.ObjectController{
			GroupName:       "/storage",
			ObjectSvc:       objectSvc,
			StorageSvc:      storageSvc,
			NameResolverSvc: nameResolverSvc,
		}

		listController := &controller.ListController{
			GroupName:    "/storage",
			ReconcileSvc: reconcileSvc,
		}

		sfNode, err := snowflake.NewNode(1)
		if err != nil {
			return errors.Wrap(err, "cannot create the request ID generator")
		}

		// Register controller handlers
		router := gin.Default()
		router.Use(controller.CORSMiddleware())
		router.Use(controller.RequestIDMiddleware(sfNode))
		apiv1Group := router.Group("/api/v1")
		controller.RegisterHandlers(apiv1Group, pingPongController)
		controller.RegisterHandlers(apiv1Group, objectController)
		controller.RegisterHandlers(apiv1Group, listController)

		// Start the HTTP server
		httpServer := &http.Server{
			Addr:    fmt.Sprintf(":%v", serverInfo.Port),
			Handler: router,
		}

		chanError := make(chan error)
		go func() {
			if err := httpServer.ListenAndServe(); err != nil {
				chanError <- errors.Wrap(err, "cannot start the HTTP server")
			}
		}()

		// Listen Ctrl+C signals. On receiving a signal stops the app elegantly
		chanQuit := make(chan os.Signal, 1)
		signal.Notify(chanQuit, os.Interrupt)
		select {
		case err := <-chanError:
			return err
		case <-chanQuit:
			log.Infoln("Received an interrupt signal. Quitting the app...")

			// Stop the HTTP server elegantly
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			log.Infoln("Stopping the HTTP server...")
			if err := httpServer.Shutdown(ctx); err != nil {
				return errors.Wrap(err, "cannot stop the HTTP server gracefully")
			}
		}

		return nil
	}

	return serveFunc
}
