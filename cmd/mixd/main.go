package main

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vx-labs/mix-engine/adapters/registry"
	"github.com/vx-labs/mix-engine/adapters/registry/consul"
	"github.com/vx-labs/mix-engine/adapters/registry/mesh"
	"github.com/vx-labs/mix-engine/adapters/registry/static"
	"github.com/vx-labs/mix-engine/cli"
	"github.com/vx-labs/mix-engine/mixer"
	"github.com/vx-labs/mix-engine/model"
	"github.com/vx-labs/mix-engine/model/store"
	"github.com/vx-labs/mix-engine/network"
	"go.uber.org/zap"
)

func selectRegistry(ctx *cli.Context, gossipConfig network.Configuration) registry.Registry {
	switch viper.GetString("registry") {
	case "consul":
		reg, err := consul.NewConsulRegistry(ctx.ID, ctx.Logger)
		if err != nil {
			ctx.Logger.Fatal("failed to connect to consul", zap.Error(err))
		}
		return reg
	case "mesh":
		reg, err := mesh.NewMeshRegistry(ctx.ID, ctx.Logger, mesh.Config{
			BindAddress:    gossipConfig.BindAddress(),
			BindPort:       gossipConfig.BindPort(),
			AdvertisedHost: gossipConfig.AdvertisedAddress(),
			AdvertisedPort: gossipConfig.AdvertisedPort(),
		})
		if err != nil {
			ctx.Logger.Fatal("failed to start gossip layer", zap.Error(err))
		}
		if err := reg.Join(viper.GetStringSlice("join")); err != nil {
			ctx.Logger.Warn("failed to join gossip cluster", zap.Error(err))
		}
		return reg
	case "static":
		reg, err := static.NewStaticRegistry(viper.GetStringSlice("peers"))
		if err != nil {
			ctx.Logger.Fatal("invalid static peer list", zap.Error(err))
		}
		return reg
	default:
		ctx.Logger.Fatal("unknown registry kind", zap.String("registry_kind", viper.GetString("registry")))
		return nil
	}
}

func main() {
	root := &cobra.Command{
		Use: "mixd",
		PreRun: func(cmd *cobra.Command, _ []string) {
			viper.BindPFlags(cmd.Flags())
		},
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := cli.Bootstrap(cmd)
			logger := ctx.Logger

			mixNetConf := network.ConfigurationFromFlags(viper.GetViper(), "mix")
			gossipNetConf := network.ConfigurationFromFlags(viper.GetViper(), "gossip")
			self := registry.NodeID{
				Host: mixNetConf.AdvertisedAddress(),
				Port: mixNetConf.AdvertisedPort(),
			}

			kind := viper.GetString("type")
			name := viper.GetString("name")
			reg := selectRegistry(ctx, gossipNetConf)

			modelLock := &sync.RWMutex{}
			weights := model.NewWeights(ctx.ID)

			var snapshots *store.BoltStore
			if path := viper.GetString("snapshot-path"); path != "" {
				var err error
				snapshots, err = store.New(store.Options{Path: path})
				if err != nil {
					logger.Fatal("failed to open snapshot store", zap.Error(err))
				}
				if payload, err := snapshots.Load("weights"); err == nil {
					if err := weights.Restore(payload); err != nil {
						logger.Warn("failed to restore model snapshot", zap.Error(err))
					} else {
						logger.Info("model snapshot restored", zap.Int("model_entries", weights.Len()))
					}
				}
			}

			comm := mixer.NewGRPCCommunication(viper.GetDuration("rpc-timeout"))
			mx, err := mixer.New(logger, mixer.Config{
				Kind:           kind,
				Name:           name,
				CountThreshold: viper.GetInt("count-threshold"),
				TickThreshold:  viper.GetDuration("tick-threshold"),
				RPCTimeout:     viper.GetDuration("rpc-timeout"),
				Self:           self,
			}, reg, comm, modelLock,
				mixer.WithCandidateFilter(mixer.ExcludeSelf(self)))
			if err != nil {
				logger.Fatal("invalid mixer configuration", zap.Error(err))
			}
			if err := mx.SetMixable(weights); err != nil {
				logger.Fatal("failed to wire model", zap.Error(err))
			}

			server := mixer.NewServer(mx, logger)
			listener := server.Serve(mixNetConf.BindPort())
			if listener == nil {
				logger.Fatal("failed to start mix listener")
			}
			logger.Info(mixNetConf.Describe())

			if err := reg.Register(kind, name, self); err != nil {
				logger.Fatal("failed to register into the cluster", zap.Error(err))
			}
			if err := mx.Start(); err != nil {
				logger.Fatal("failed to start mixer", zap.Error(err))
			}

			observe := func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					http.Error(w, "post only", http.StatusMethodNotAllowed)
					return
				}
				feature := r.URL.Query().Get("feature")
				if feature == "" {
					http.Error(w, "missing feature", http.StatusBadRequest)
					return
				}
				gradient, err := strconv.ParseFloat(r.URL.Query().Get("gradient"), 64)
				if err != nil {
					http.Error(w, "invalid gradient", http.StatusBadRequest)
					return
				}
				modelLock.Lock()
				weights.Observe(feature, gradient)
				modelLock.Unlock()
				mx.NotifyUpdated()
			}
			health := func() string {
				return "ok"
			}
			ctx.ServeMonitoring(viper.GetInt("monitoring-port"), health, mx.Status, map[string]http.HandlerFunc{
				"/observe": observe,
			})

			ctx.WaitSignals(func() {
				if err := reg.Unregister(kind, name, self); err != nil {
					logger.Warn("failed to unregister from the cluster", zap.Error(err))
				}
				mx.Stop()
				logger.Info("mixer stopped")
				server.Shutdown()
				logger.Info("mix listener stopped")
				if snapshots != nil {
					modelLock.RLock()
					payload, err := weights.Snapshot()
					modelLock.RUnlock()
					if err == nil {
						err = snapshots.Save("weights", payload)
					}
					if err != nil {
						logger.Warn("failed to save model snapshot", zap.Error(err))
					}
					snapshots.Close()
				}
				reg.Shutdown()
			})
		},
	}
	root.Flags().StringP("type", "t", "recommender", "Learner type registered into the cluster")
	root.Flags().StringP("name", "n", "default", "Cluster name this node belongs to")
	root.Flags().IntP("count-threshold", "", 512, "Mix when this many local updates accumulated (0 disables)")
	root.Flags().DurationP("tick-threshold", "", 30*time.Second, "Mix when this much time passed since the last one (0 disables)")
	root.Flags().DurationP("rpc-timeout", "", 10*time.Second, "Peer call timeout")
	root.Flags().StringP("registry", "r", "static", "Cluster registry backend (consul, mesh or static)")
	root.Flags().StringSliceP("peers", "p", []string{}, "Static peer list, as host:port pairs")
	root.Flags().StringSliceP("join", "j", []string{}, "Gossip addresses to join when using the mesh registry")
	root.Flags().IntP("monitoring-port", "", 9090, "Serve metrics, health and status on this port")
	root.Flags().StringP("snapshot-path", "", "", "Persist model snapshots in this bolt database")
	root.Flags().BoolP("pprof", "", false, "Enable pprof endpoint")
	network.RegisterFlagsForService(root, viper.GetViper(), "mix", 4001)
	network.RegisterFlagsForService(root, viper.GetViper(), "gossip", 4002)

	if err := root.Execute(); err != nil {
		panic(err)
	}
}
