package store

import (
	"log"
	"sync"

	"github.com/homeboard/homeboard/internal/config"
)

// persistQueueSize bounds how many writes can be pending; mutations arrive
// at UI rate so the buffer never fills in practice.
const persistQueueSize = 64

type persistJob struct {
	key   string
	value any
}

// persister serializes fire-and-forget preference writes on one worker
// goroutine. Failures are logged and retried once; the mutation that caused
// the write has long since returned, per the store contract.
type persister struct {
	prefs *config.Prefs
	jobs  chan persistJob
	wg    sync.WaitGroup
	once  sync.Once
}

func newPersister(prefs *config.Prefs) *persister {
	p := &persister{
		prefs: prefs,
		jobs:  make(chan persistJob, persistQueueSize),
	}
	if prefs != nil {
		go p.run()
	}
	return p
}

func (p *persister) run() {
	for job := range p.jobs {
		if err := p.prefs.SetJSON(job.key, job.value); err != nil {
			log.Printf("persist %s failed, retrying: %v", job.key, err)
			if err := p.prefs.SetJSON(job.key, job.value); err != nil {
				log.Printf("persist %s failed permanently: %v", job.key, err)
			}
		}
		p.wg.Done()
	}
}

// enqueue schedules a write of value under key. Last write per key wins;
// there is no ordering guarantee across keys.
func (p *persister) enqueue(key string, value any) {
	if p.prefs == nil {
		return
	}
	p.wg.Add(1)
	p.jobs <- persistJob{key: key, value: value}
}

// saveString writes a bare string value synchronously; theme and language
// are single tokens not worth queueing.
func (p *persister) saveString(key, value string) {
	if p.prefs == nil {
		return
	}
	p.prefs.SetString(key, value)
}

func (p *persister) loadJSON(key string, out any) {
	if p.prefs == nil {
		return
	}
	if _, err := p.prefs.GetJSON(key, out); err != nil {
		log.Printf("load %s: %v", key, err)
	}
}

func (p *persister) loadString(key string) string {
	if p.prefs == nil {
		return ""
	}
	return p.prefs.GetString(key)
}

// flush blocks until every enqueued write has been attempted.
func (p *persister) flush() {
	p.wg.Wait()
}

// close flushes and stops the worker. Further enqueues would panic; the
// store only closes on shutdown.
func (p *persister) close() {
	p.flush()
	p.once.Do(func() {
		if p.prefs != nil {
			close(p.jobs)
		}
	})
}
