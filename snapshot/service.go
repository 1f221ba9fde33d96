// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package snapshot restores a node's databases from a remotely fetched,
// chunked snapshot, and serves completed snapshots to other peers.
//
// Chunk bytes arrive asynchronously and in any order. They are queued by
// the submission API and consumed strictly serially by a single worker,
// which feeds them into the active restoration. Once every chunk named by
// the manifest has been consumed, the rebuilt stores are swapped into the
// node's live database location; the node keeps serving its stale stores
// until the swap succeeds.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/borealis-labs/borealisgo/ids"
	"github.com/borealis-labs/borealisgo/utils/buffer"
	"github.com/borealis-labs/borealisgo/utils/compression"
	"github.com/borealis-labs/borealisgo/utils/filesystem"
	"github.com/borealis-labs/borealisgo/utils/logging"
	"github.com/borealis-labs/borealisgo/utils/perms"
)

const (
	snapshotDirName    = "snapshot"
	restorationDirName = "restoration"
	backupDirPrefix    = "backup_"

	// DefaultMaxChunkSize bounds the decompressed size of a single chunk.
	DefaultMaxChunkSize = 64 << 20 // 64 MiB

	chunkQueueInitSize = 64
)

// Status of the current restoration attempt.
type Status uint8

const (
	// Inactive: no restoration.
	Inactive Status = iota
	// Ongoing: a restoration is accepting chunks.
	Ongoing
	// Failed: the last restoration attempt aborted. Cleared by the next
	// BeginRestore.
	Failed
)

func (s Status) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Ongoing:
		return "ongoing"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Config configures a snapshot service.
type Config struct {
	// DataDir is the node's base data directory. The completed snapshot,
	// the in-progress restoration and the live databases all live under
	// it.
	DataDir string

	// Pruning selects the live database root and the version marker
	// written into restored stores.
	Pruning PruningMode

	// Compression is the codec chunks are compressed with. Defaults to
	// snappy.
	Compression compression.Type

	// MaxChunkSize bounds the decompressed size of a single chunk.
	// Defaults to DefaultMaxChunkSize.
	MaxChunkSize int64
}

type chunkKind uint8

const (
	stateChunk chunkKind = iota
	blockChunk
)

type chunkMsg struct {
	kind  chunkKind
	id    ids.ID
	chunk []byte
}

// Service coordinates snapshot restorations for the node's lifetime. At
// most one restoration is active at a time; a completed snapshot is
// served to peers independently of any in-progress restoration.
//
// Lock order: the status lock is only ever acquired while the restoration
// lock is either already held or not needed; never acquire the
// restoration lock while holding the status lock.
type Service struct {
	log     logging.Logger
	metrics *metrics

	dataDir      string
	pruning      PruningMode
	spec         ChainSpec
	rebuilders   Rebuilders
	decompressor compression.Compressor

	restorationLock sync.Mutex
	restoration     *Restoration

	statusLock sync.Mutex
	status     Status

	readerLock sync.RWMutex
	reader     *Reader

	queue *buffer.UnboundedBlockingDeque[chunkMsg]
	done  sync.WaitGroup
}

// NewService creates the service, starts its processing worker and, if a
// completed snapshot exists under the data directory, begins serving it.
// Any leftover restoration directory from a previous run is deleted.
func NewService(
	config Config,
	spec ChainSpec,
	rebuilders Rebuilders,
	log logging.Logger,
	reg prometheus.Registerer,
) (*Service, error) {
	if config.Compression == 0 {
		config.Compression = compression.TypeSnappy
	}
	if config.MaxChunkSize <= 0 {
		config.MaxChunkSize = DefaultMaxChunkSize
	}
	decompressor, err := compression.NewCompressor(config.Compression, config.MaxChunkSize)
	if err != nil {
		return nil, err
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	s := &Service{
		log:          log,
		metrics:      m,
		dataDir:      config.DataDir,
		pruning:      config.Pruning,
		spec:         spec,
		rebuilders:   rebuilders,
		decompressor: decompressor,
		queue:        buffer.NewUnboundedBlockingDeque[chunkMsg](chunkQueueInitSize),
	}

	if err := os.MkdirAll(s.snapshotDir(), perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}
	if err := os.RemoveAll(s.restorationDir()); err != nil {
		return nil, fmt.Errorf("clearing stale restoration dir: %w", err)
	}

	if reader, err := NewReader(s.snapshotDir()); err == nil {
		s.reader = reader
	} else {
		log.Debug("no completed snapshot to serve",
			zap.Error(err),
		)
	}

	s.done.Add(1)
	go s.processChunks()
	return s, nil
}

// Stop shuts down the processing worker and releases any in-progress
// restoration. Chunks still queued are discarded.
func (s *Service) Stop() {
	s.queue.Close()
	s.done.Wait()

	s.restorationLock.Lock()
	defer s.restorationLock.Unlock()
	if s.restoration != nil {
		if err := s.restoration.Close(); err != nil {
			s.log.Warn("closing restoration during shutdown",
				zap.Error(err),
			)
		}
		s.restoration = nil
	}
}

func (s *Service) snapshotDir() string {
	return filepath.Join(s.dataDir, snapshotDirName)
}

func (s *Service) restorationDir() string {
	return filepath.Join(s.snapshotDir(), restorationDirName)
}

// The pruning-mode-specific root holding the node's live databases.
func (s *Service) liveDBDir() string {
	return filepath.Join(s.dataDir, s.pruning.String())
}

// Status returns the current restoration status. It is read under its own
// lock so it never contends with an in-progress feed.
func (s *Service) Status() Status {
	s.statusLock.Lock()
	defer s.statusLock.Unlock()
	return s.status
}

func (s *Service) setStatus(status Status) {
	s.statusLock.Lock()
	defer s.statusLock.Unlock()
	s.status = status
}

// Manifest returns the manifest of the last completed snapshot,
// independent of any in-progress restoration.
func (s *Service) Manifest() (Manifest, bool) {
	s.readerLock.RLock()
	defer s.readerLock.RUnlock()

	if s.reader == nil {
		return Manifest{}, false
	}
	return s.reader.Manifest(), true
}

// Chunk returns a completed snapshot's raw chunk bytes by id. It never
// touches the in-progress restoration.
func (s *Service) Chunk(id ids.ID) ([]byte, bool) {
	s.readerLock.RLock()
	defer s.readerLock.RUnlock()

	if s.reader == nil {
		return nil, false
	}
	chunk, err := s.reader.Chunk(id)
	if err != nil {
		s.log.Debug("failed to read snapshot chunk",
			zap.Stringer("chunkID", id),
			zap.Error(err),
		)
		return nil, false
	}
	return chunk, true
}

// SetSnapshot starts serving the snapshot stored in [dir] to peers.
// Completing a restoration does not publish it; this is the explicit
// publish step.
func (s *Service) SetSnapshot(dir string) error {
	reader, err := NewReader(dir)
	if err != nil {
		return err
	}

	s.readerLock.Lock()
	defer s.readerLock.Unlock()
	s.reader = reader
	return nil
}

// BeginRestore tears down any restoration in progress and starts a new
// one for [manifest]. Returns true on success. On failure the status is
// left untouched.
func (s *Service) BeginRestore(manifest Manifest) bool {
	if err := manifest.Validate(); err != nil {
		s.log.Warn("rejecting snapshot manifest",
			zap.Error(err),
		)
		return false
	}

	restDir := s.restorationDir()

	s.restorationLock.Lock()
	defer s.restorationLock.Unlock()

	// Tear down the existing restoration. Its store handles must be
	// released before the directory holding them is deleted below.
	if s.restoration != nil {
		if err := s.restoration.Close(); err != nil {
			s.log.Warn("closing preempted restoration",
				zap.Error(err),
			)
		}
		s.restoration = nil
	}

	if err := os.RemoveAll(restDir); err != nil {
		s.log.Warn("failed to begin snapshot restoration",
			zap.Error(err),
		)
		return false
	}
	if err := os.MkdirAll(restDir, perms.ReadWriteExecute); err != nil {
		s.log.Warn("failed to begin snapshot restoration",
			zap.Error(err),
		)
		return false
	}

	restoration, err := newRestoration(
		manifest,
		s.pruning,
		restDir,
		s.spec,
		s.rebuilders,
		s.decompressor,
		s.log,
	)
	if err != nil {
		s.log.Warn("failed to begin snapshot restoration",
			zap.Error(err),
		)
		return false
	}
	s.restoration = restoration
	s.setStatus(Ongoing)

	s.log.Info("beginning snapshot restoration",
		zap.Uint64("blockNumber", manifest.BlockNumber),
		zap.Int("stateChunks", len(manifest.StateChunks)),
		zap.Int("blockChunks", len(manifest.BlockChunks)),
	)
	return true
}

// RestoreStateChunk submits a raw state chunk for asynchronous
// processing. It never blocks on chunk processing.
func (s *Service) RestoreStateChunk(id ids.ID, chunk []byte) {
	if !s.queue.PushRight(chunkMsg{kind: stateChunk, id: id, chunk: chunk}) {
		// The worker outlives every submitter; a closed queue here is a
		// programming error, not a runtime condition.
		panic("state chunk submitted after snapshot service shutdown")
	}
}

// RestoreBlockChunk submits a raw block chunk for asynchronous
// processing. It never blocks on chunk processing.
func (s *Service) RestoreBlockChunk(id ids.ID, chunk []byte) {
	if !s.queue.PushRight(chunkMsg{kind: blockChunk, id: id, chunk: chunk}) {
		panic("block chunk submitted after snapshot service shutdown")
	}
}

// processChunks drains the queue, processing one chunk at a time. The
// strict serialization guarantees at most one mutation of the restoration
// and of the on-disk stores is in flight at any instant.
func (s *Service) processChunks() {
	defer s.done.Done()

	for {
		msg, ok := s.queue.PopLeft()
		if !ok {
			return
		}
		switch msg.kind {
		case stateChunk:
			s.feedStateChunk(msg.id, msg.chunk)
		case blockChunk:
			s.feedBlockChunk(msg.id, msg.chunk)
		}
	}
}

// feedChunk feeds a chunk of either kind. No-op unless a restoration is
// ongoing. Feeding the final outstanding chunk finalizes the restoration.
func (s *Service) feedChunk(id ids.ID, chunk []byte, kind chunkKind) error {
	switch s.Status() {
	case Inactive, Failed:
		return nil
	}

	s.restorationLock.Lock()
	defer s.restorationLock.Unlock()

	restoration := s.restoration
	if restoration == nil {
		return nil
	}

	var err error
	switch kind {
	case stateChunk:
		err = restoration.feedState(id, chunk)
	case blockChunk:
		err = restoration.feedBlocks(id, chunk, s.spec.Engine)
	}
	if err != nil {
		return err
	}

	if restoration.Done() {
		return s.finalizeRestoration()
	}
	return nil
}

// feedStateChunk processes one state chunk synchronously. Any error
// aborts the restoration attempt.
func (s *Service) feedStateChunk(id ids.ID, chunk []byte) {
	if err := s.feedChunk(id, chunk, stateChunk); err != nil {
		s.log.Warn("state chunk restoration failed",
			zap.Stringer("chunkID", id),
			zap.Error(err),
		)
		s.abortRestoration()
		return
	}
	s.metrics.stateChunksProcessed.Inc()
}

// feedBlockChunk processes one block chunk synchronously. Any error
// aborts the restoration attempt.
func (s *Service) feedBlockChunk(id ids.ID, chunk []byte) {
	if err := s.feedChunk(id, chunk, blockChunk); err != nil {
		s.log.Warn("block chunk restoration failed",
			zap.Stringer("chunkID", id),
			zap.Error(err),
		)
		s.abortRestoration()
		return
	}
	s.metrics.blockChunksProcessed.Inc()
}

// abortRestoration drops the current attempt, deletes its partial stores
// and marks the service Failed. The previously completed snapshot, if
// any, keeps being served.
func (s *Service) abortRestoration() {
	s.restorationLock.Lock()
	if s.restoration != nil {
		if err := s.restoration.Close(); err != nil {
			s.log.Warn("closing aborted restoration",
				zap.Error(err),
			)
		}
		s.restoration = nil
	}
	_ = os.RemoveAll(s.restorationDir())
	s.restorationLock.Unlock()

	s.setStatus(Failed)
	s.metrics.restorationFailures.Inc()
}

// finalizeRestoration swaps the rebuilt stores into the live location.
// Must be called with the restoration lock held.
//
// The restoration is closed first: its open store handles point into the
// directory about to be renamed. The stores are then swapped one at a
// time with per-store rollback. There is no cross-store atomicity; a
// failure mid-sequence leaves earlier stores already swapped and is
// surfaced to the caller.
func (s *Service) finalizeRestoration() error {
	s.log.Info("finalizing snapshot restoration")

	if s.restoration != nil {
		if err := s.restoration.Close(); err != nil {
			return fmt.Errorf("releasing restored stores: %w", err)
		}
		s.restoration = nil
	}

	for _, name := range liveDBNames {
		if err := s.replaceLiveDB(name); err != nil {
			return err
		}
	}

	s.setStatus(Inactive)
	s.metrics.restorationsCompleted.Inc()

	_ = os.RemoveAll(s.restorationDir())
	return nil
}

// replaceLiveDB swaps one live store with its restored counterpart:
// live -> backup, restored -> live, then delete the backup. A missing
// live store means there was nothing to back up, not an error. If the
// second rename fails the backup is moved back before the error
// propagates.
func (s *Service) replaceLiveDB(name string) error {
	liveDB := filepath.Join(s.liveDBDir(), name)
	restoredDB := filepath.Join(s.restorationDir(), name)
	backupDB := filepath.Join(s.dataDir, backupDirPrefix+name)

	s.log.Debug("replacing live database",
		zap.String("name", name),
		zap.String("live", liveDB),
		zap.String("restored", restoredDB),
	)

	if err := os.MkdirAll(s.liveDBDir(), perms.ReadWriteExecute); err != nil {
		return fmt.Errorf("creating live database root: %w", err)
	}

	// Clear any stale backup from an earlier crashed swap.
	_ = os.RemoveAll(backupDB)

	existed, err := filesystem.RenameIfExists(liveDB, backupDB)
	if err != nil {
		return fmt.Errorf("backing up %s database: %w", name, err)
	}

	if err := os.Rename(restoredDB, liveDB); err != nil {
		if existed {
			if _, backErr := filesystem.RenameIfExists(backupDB, liveDB); backErr != nil {
				s.log.Error("failed to restore backup after failed swap",
					zap.String("name", name),
					zap.Error(backErr),
				)
			}
		}
		return fmt.Errorf("swapping in restored %s database: %w", name, err)
	}

	// Cleanup only; the swap already succeeded.
	if existed {
		_ = os.RemoveAll(backupDB)
	}
	return nil
}
