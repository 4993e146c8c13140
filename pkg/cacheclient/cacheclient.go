package cacheclient

import (
	"time"

	"github.com/QuangTung97/go-memcache/memcache"
)

// Client is a small key value facade over memcached
type Client struct {
	client *memcache.Client
}

// New ...
func New(addr string, numConns int) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
	}
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	p := c.client.Pipeline()
	defer p.Finish()
	return p.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// Get returns found = false on a cache miss
func (c *Client) Get(key string) ([]byte, bool, error) {
	p := c.client.Pipeline()
	defer p.Finish()

	resp, err := p.MGet(key, memcache.MGetOptions{})()
	if err != nil {
		return nil, false, err
	}
	if resp.Type != memcache.MGetResponseTypeVA {
		return nil, false, nil
	}
	return resp.Data, true, nil
}

// Set with ttl rounded down to seconds, zero means no expiration
func (c *Client) Set(key string, value []byte, ttl time.Duration) error {
	p := c.client.Pipeline()
	defer p.Finish()

	_, err := p.MSet(key, value, memcache.MSetOptions{
		TTL: uint32(ttl / time.Second),
	})()
	return err
}

// Delete ...
func (c *Client) Delete(key string) error {
	p := c.client.Pipeline()
	defer p.Finish()

	_, err := p.MDel(key, memcache.MDelOptions{})()
	return err
}
