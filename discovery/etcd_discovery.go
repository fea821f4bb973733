// Package discovery is the sidecar's optional self-registration mechanism.
// It has nothing to do with the IPC channel to phi-core: it lets an
// external orchestrator watch etcd to see which adapter plugin types
// currently have a live sidecar process, and on what socket path, without
// ever touching the Unix domain socket itself. Grounded on
// registry/etcd_registry.go, generalized from "RPC service instance" to
// "adapter sidecar instance."
package discovery

import (
	"context"
	"encoding/json"
	"fmt"

	clientv3 "go.etcd.io/etcd/client/v3"
)

const keyPrefix = "/phi-adapter/"

// Instance is the record a sidecar publishes about itself.
type Instance struct {
	PluginType string `json:"pluginType"`
	SocketPath string `json:"socketPath"`
	AdapterID  int    `json:"adapterId"`
}

func instanceKey(pluginType, socketPath string) string {
	return keyPrefix + pluginType + "/" + socketPath
}

// Registry publishes and withdraws adapter sidecar instances in etcd. The
// zero value is not usable; construct with NewRegistry.
type Registry struct {
	client *clientv3.Client
}

// NewRegistry connects to the given etcd endpoints. Callers should close
// the returned Registry's underlying client via Close when done.
func NewRegistry(endpoints []string) (*Registry, error) {
	c, err := clientv3.New(clientv3.Config{Endpoints: endpoints})
	if err != nil {
		return nil, fmt.Errorf("discovery: connect etcd: %w", err)
	}
	return &Registry{client: c}, nil
}

// Close releases the underlying etcd client connection.
func (r *Registry) Close() error {
	return r.client.Close()
}

// Register publishes inst under a TTL lease and keeps the lease alive in
// the background until ctx is canceled. Call Deregister (or cancel ctx and
// let the lease expire) when the sidecar's connection ends.
func (r *Registry) Register(ctx context.Context, inst Instance, ttlSeconds int64) error {
	lease, err := r.client.Grant(ctx, ttlSeconds)
	if err != nil {
		return fmt.Errorf("discovery: grant lease: %w", err)
	}

	val, err := json.Marshal(inst)
	if err != nil {
		return fmt.Errorf("discovery: marshal instance: %w", err)
	}

	key := instanceKey(inst.PluginType, inst.SocketPath)
	if _, err := r.client.Put(ctx, key, string(val), clientv3.WithLease(lease.ID)); err != nil {
		return fmt.Errorf("discovery: put %s: %w", key, err)
	}

	keepAlive, err := r.client.KeepAlive(ctx, lease.ID)
	if err != nil {
		return fmt.Errorf("discovery: keepalive: %w", err)
	}
	go func() {
		for range keepAlive {
		}
	}()
	return nil
}

// Deregister removes a previously registered instance immediately, rather
// than waiting for its lease to expire.
func (r *Registry) Deregister(ctx context.Context, pluginType, socketPath string) error {
	_, err := r.client.Delete(ctx, instanceKey(pluginType, socketPath))
	if err != nil {
		return fmt.Errorf("discovery: deregister %s/%s: %w", pluginType, socketPath, err)
	}
	return nil
}

// Discover lists every live instance currently registered for a plugin
// type. Malformed entries are skipped rather than failing the whole call.
func (r *Registry) Discover(ctx context.Context, pluginType string) ([]Instance, error) {
	prefix := keyPrefix + pluginType + "/"
	resp, err := r.client.Get(ctx, prefix, clientv3.WithPrefix())
	if err != nil {
		return nil, fmt.Errorf("discovery: get %s: %w", prefix, err)
	}
	instances := make([]Instance, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		var inst Instance
		if err := json.Unmarshal(kv.Value, &inst); err != nil {
			continue
		}
		instances = append(instances, inst)
	}
	return instances, nil
}
