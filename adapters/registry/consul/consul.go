package consul

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/hashicorp/consul/api"
	consul "github.com/hashicorp/consul/api"
	"github.com/pkg/errors"
	"github.com/vx-labs/mix-engine/adapters/registry"
	"go.uber.org/zap"
)

// ConsulRegistry resolves the learner fleet through consul's health
// catalog: every node registers a TCP-checked service named after the
// (type, name) pair, and GetAllNodes returns the passing instances.
type ConsulRegistry struct {
	id     string
	api    *consul.Client
	logger *zap.Logger
}

func serviceName(kind, name string) string {
	return fmt.Sprintf("mix-%s-%s", kind, name)
}

func NewConsulRegistry(id string, logger *zap.Logger) (*ConsulRegistry, error) {
	consulConfig := consul.DefaultConfig()
	consulConfig.HttpClient = http.DefaultClient
	consulAPI, err := consul.NewClient(consulConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to consul")
	}
	return &ConsulRegistry{
		id:     id,
		api:    consulAPI,
		logger: logger,
	}, nil
}

func (c *ConsulRegistry) GetAllNodes(kind, name string) ([]registry.NodeID, error) {
	var out []registry.NodeID
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	err := backoff.Retry(func() error {
		services, _, err := c.api.Health().Service(serviceName(kind, name), "", true, &api.QueryOptions{AllowStale: false})
		if err != nil {
			c.logger.Debug("consul catalog query failed, retrying", zap.Error(err))
			return err
		}
		out = make([]registry.NodeID, len(services))
		for idx, service := range services {
			out[idx] = registry.NodeID{
				Host: service.Service.Address,
				Port: service.Service.Port,
			}
		}
		return nil
	}, policy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch cluster members from consul")
	}
	return out, nil
}

func (c *ConsulRegistry) Register(kind, name string, self registry.NodeID) error {
	address := self.String()
	return c.api.Agent().ServiceRegister(&api.AgentServiceRegistration{
		ID:      c.serviceID(kind, name),
		Name:    serviceName(kind, name),
		Address: self.Host,
		Port:    self.Port,
		Meta: map[string]string{
			"node_id": c.id,
		},
		EnableTagOverride: true,
		Check: &api.AgentServiceCheck{
			CheckID:                        fmt.Sprintf("check-tcp-%s-%s", serviceName(kind, name), c.id),
			Name:                           fmt.Sprintf("TCP Check on address %s", address),
			DeregisterCriticalServiceAfter: "5m",
			TCP:                            address,
			Interval:                       "10s",
			Timeout:                        "2s",
		},
	})
}
func (c *ConsulRegistry) Unregister(kind, name string, self registry.NodeID) error {
	return c.api.Agent().ServiceDeregister(c.serviceID(kind, name))
}
func (c *ConsulRegistry) serviceID(kind, name string) string {
	return fmt.Sprintf("%s-%s", serviceName(kind, name), c.id)
}
func (c *ConsulRegistry) Shutdown() error {
	return nil
}

// WaitForPeers blocks until the consul catalog reports at least min
// passing members, or the deadline expires.
func (c *ConsulRegistry) WaitForPeers(kind, name string, min int, deadline time.Duration) error {
	timeout := time.After(deadline)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		nodes, err := c.GetAllNodes(kind, name)
		if err == nil && len(nodes) >= min {
			return nil
		}
		select {
		case <-timeout:
			return errors.New("deadline expired before enough cluster members were found")
		case <-ticker.C:
		}
	}
}
