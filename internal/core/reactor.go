package core

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/banshee-data/trackcore/internal/pipeline"
	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/source"
)

// task is the slot of one in-flight stage.
type task struct {
	generation uint64
	cancel     context.CancelFunc
	frame      uint32
}

type decodeResult struct {
	generation uint64
	frame      source.Frame
	err        error
}

type trackResult struct {
	generation uint64
	res        *pipeline.Result
	err        error
}

type encodeJob struct {
	sink    source.Sink
	image   protocol.Image
	payload []byte
	// finish closes the sink instead of adding a frame.
	finish *finishJob
}

type finishJob struct {
	sink   source.Sink
	save   bool
	config protocol.RecordingConfig
	tracks []protocol.TrackRecord
}

type encodeResult struct {
	generation uint64
	job        encodeJob
	err        error
}

// Run starts the configured components and runs the loop until a
// Shutdown command or ctx cancellation. Both paths finalise any active
// recording and stop every component before Run returns.
func (o *Orchestrator) Run(ctx context.Context) error {
	defer close(o.done)
	o.runCtx = ctx

	if err := o.reg.StartComponents(ctx, o.opts.Components); err != nil {
		o.log.Error("starting components", zap.Error(err))
	}
	o.state.Components = o.reg.Configs()

	o.ticker = o.opts.Clock.NewTicker(framePeriod(o.state.TargetFPS))
	defer o.ticker.Stop()
	stats := o.opts.Clock.NewTicker(o.opts.StatsInterval)
	defer stats.Stop()

	o.log.Info("orchestrator running",
		zap.Float64("target_fps", o.state.TargetFPS),
		zap.Bool("realtime", o.state.RealtimeMode),
		zap.Int("entities", len(o.state.EntityIDs)))

	for {
		// Commands take priority over frame work.
		select {
		case req := <-o.commands:
			if o.handleCommand(req) {
				return nil
			}
			continue
		default:
		}

		select {
		case req := <-o.commands:
			if o.handleCommand(req) {
				return nil
			}
		case reply := <-o.queries:
			reply <- o.snapshot()
		case req := <-o.images:
			req.reply <- o.onImage(req.img)
		case <-o.ticker.C():
			o.onTick()
		case res := <-o.decodeDone:
			o.onDecode(res)
		case res := <-o.trackDone:
			o.onTrack(res)
		case res := <-o.encodeDone:
			o.onEncode(res)
		case res := <-o.reg.NextPending():
			if o.reg.Resolve(res) {
				o.state.Components = o.reg.Configs()
			}
		case <-stats.C():
			o.reportStats()
		case <-ctx.Done():
			o.shutdown()
			return ctx.Err()
		}
	}
}

func (o *Orchestrator) handleCommand(req commandReq) (stop bool) {
	if req.cmd.Kind == protocol.CmdShutdown {
		o.shutdown()
		req.reply <- nil
		return true
	}
	err := o.apply(req.cmd)
	if err != nil {
		o.log.Warn("command rejected", zap.Stringer("command", req.cmd), zap.Error(err))
	} else {
		o.log.Debug("command applied", zap.Stringer("command", req.cmd))
	}
	req.reply <- err
	return false
}

func (o *Orchestrator) newTask(frame uint32) (*task, context.Context) {
	ctx, cancel := context.WithCancel(o.runCtx)
	o.generation++
	return &task{generation: o.generation, cancel: cancel, frame: frame}, ctx
}

func (o *Orchestrator) stale(t *task, generation uint64, stage string) bool {
	if t != nil && t.generation == generation {
		return false
	}
	o.metrics.StaleResults.WithLabelValues(stage).Inc()
	o.log.Debug("discarding stale result", zap.String("stage", stage), zap.Uint64("generation", generation))
	return true
}

// abort cancels the decode and track tasks. Their results will arrive
// stale.
func (o *Orchestrator) abort() {
	for _, t := range []**task{&o.decode, &o.track} {
		if *t != nil {
			(*t).cancel()
			*t = nil
		}
	}
	o.untracked = nil
}

func (o *Orchestrator) onTick() {
	if o.state.PlaybackState != protocol.Playing {
		return
	}
	if o.decode == nil && !o.sourceClosed && (o.state.RealtimeMode || o.track == nil) {
		o.startDecode(nil)
		return
	}
	o.metrics.FramesDropped.Inc()
	o.state.Metrics.DroppedFrames++
}

func (o *Orchestrator) startDecode(seek *uint32) {
	var frame uint32
	if seek != nil {
		frame = *seek
	}
	t, ctx := o.newTask(frame)
	o.decode = t
	req := source.DecodeRequest{
		Seek:        seek,
		CopyPayload: o.state.RecordingState == protocol.Recording,
		Undistort:   o.state.UndistortMode == protocol.UndistortImage,
	}
	go func() {
		defer t.cancel()
		o.sourceMu.Lock()
		frame, err := o.opts.Source.Next(ctx, req)
		o.sourceMu.Unlock()
		select {
		case o.decodeDone <- decodeResult{generation: t.generation, frame: frame, err: err}:
		case <-o.done:
		}
	}()
}

func (o *Orchestrator) onDecode(res decodeResult) {
	if o.stale(o.decode, res.generation, "decode") {
		return
	}
	o.decode = nil

	if res.err != nil {
		o.endOfStream(res.err)
		return
	}
	o.metrics.FramesDecoded.Inc()
	o.state.Metrics.DecodedFrames++
	o.ingest(res.frame.Image, res.frame.Payload)
}

// endOfStream stops playback after a failed decode. A plain end of stream
// keeps the source open so it can be seeked back into.
func (o *Orchestrator) endOfStream(err error) {
	if errors.Is(err, source.ErrEndOfStream) {
		o.log.Info("end of stream")
	} else {
		o.metrics.DecodeErrors.Inc()
		o.state.Metrics.DecodeErrors++
		o.log.Error("decode failed, closing source", zap.Error(err))
		o.closeSource()
	}
	if o.state.RecordingState == protocol.Recording {
		o.stopRecording(protocol.RecordingFinished)
	}
	o.state.PlaybackState = protocol.EndOfStream
}

func (o *Orchestrator) closeSource() {
	if o.sourceClosed {
		return
	}
	o.sourceClosed = true
	o.sourceMu.Lock()
	err := o.opts.Source.Close()
	o.sourceMu.Unlock()
	if err != nil {
		o.log.Warn("closing source", zap.Error(err))
	}
}

func (o *Orchestrator) onImage(img protocol.Image) error {
	if img.Width == 0 || img.Height == 0 || img.Channels == 0 {
		return invalid("image %s:%d has no pixels", img.StreamID, img.FrameNumber)
	}
	o.ingest(img, nil)
	return nil
}

// ingest makes img the latest frame. It is recorded when it belongs to the
// recorded stream and tracked now or after the running step.
func (o *Orchestrator) ingest(img protocol.Image, payload []byte) {
	o.state.LastImage = &img

	if cfg := o.state.RecordingConfig; o.state.RecordingState == protocol.Recording && o.sink != nil &&
		cfg != nil && cfg.StreamID == img.StreamID {
		o.record(img, payload)
	}

	if o.track == nil {
		o.startTrack(img)
	} else {
		o.untracked = &img
	}
}

// record queues img for the sink. The encoder outlives the shared segment,
// so a frame without a private copy is copied here: an external image, or
// a frame whose decode began before the recording did.
func (o *Orchestrator) record(img protocol.Image, payload []byte) {
	if payload == nil {
		b, err := o.opts.CopyFrame(img)
		if err != nil {
			o.metrics.EncodeErrors.Inc()
			o.state.Metrics.EncodeErrors++
			o.log.Warn("copying frame for recording", zap.Uint32("frame", img.FrameNumber), zap.Error(err))
			return
		}
		payload = b
	}
	o.enqueueEncode(encodeJob{image: img, payload: payload})
}

func (o *Orchestrator) detector() pipeline.Detector {
	if o.opts.Detector != nil {
		return o.opts.Detector
	}
	c, ok := o.reg.Detector()
	if !ok {
		return nil
	}
	return c
}

func (o *Orchestrator) matcher() pipeline.Matcher {
	c, ok := o.reg.Matcher()
	if !ok {
		return o.opts.LocalMatcher
	}
	return c
}

func (o *Orchestrator) startTrack(img protocol.Image) {
	det := o.detector()
	if det == nil {
		return
	}
	t, ctx := o.newTask(img.FrameNumber)
	o.track = t
	step := pipeline.Step{Detector: det, Matcher: o.matcher(), Clock: o.opts.Clock}
	req := pipeline.Request{
		Image:         img,
		Geometry:      o.geometry,
		Entities:      pipeline.Identities(o.state.EntityIDs, o.state.LastEntities),
		UndistortMode: o.state.UndistortMode,
		Undistorter:   o.opts.Undistorter,
	}
	go func() {
		defer t.cancel()
		res, err := step.Track(ctx, req)
		select {
		case o.trackDone <- trackResult{generation: t.generation, res: res, err: err}:
		case <-o.done:
		}
	}()
}

func (o *Orchestrator) onTrack(res trackResult) {
	if o.stale(o.track, res.generation, "track") {
		return
	}
	frame := o.track.frame
	o.track = nil

	switch {
	case errors.Is(res.err, pipeline.ErrDetectorUnavailable):
	case res.err != nil:
		o.metrics.TrackErrors.Inc()
		o.state.Metrics.TrackErrors++
		o.log.Warn("tracking failed", zap.Uint32("frame", frame), zap.Error(res.err))
	default:
		o.merge(res.res)
	}

	if next := o.untracked; next != nil {
		o.untracked = nil
		o.startTrack(*next)
	}
}

func (o *Orchestrator) merge(r *pipeline.Result) {
	features := r.Features
	o.state.LastFeatures = &features
	o.state.LastEntities = r.Entities
	if r.Skeleton != nil {
		o.state.Skeleton = r.Skeleton
		o.tracks.SetSkeleton(r.Skeleton)
	}
	o.tracks.Merge(r.FrameNumber, r.Entities)
	o.metrics.FramesTracked.Inc()
	o.metrics.TrackLatency.Observe(r.Latency.Seconds())
	o.state.Metrics.TrackedFrames++
}

func (o *Orchestrator) reportStats() {
	o.reg.SampleProcesses()
	m := o.state.Metrics
	o.log.Info("pipeline stats",
		zap.Uint64("decoded", m.DecodedFrames),
		zap.Uint64("dropped", m.DroppedFrames),
		zap.Uint64("tracked", m.TrackedFrames),
		zap.Uint64("encoded", m.EncodedFrames),
		zap.Int("encode_queue", len(o.encodeQueue)),
		zap.Any("connected", o.reg.Connected()))
}

// shutdown finalises the recording, stops every stage and component and
// closes the source. The loop exits right after.
func (o *Orchestrator) shutdown() {
	o.log.Info("orchestrator shutting down")
	o.abort()
	if o.state.RecordingState == protocol.Recording {
		o.stopRecording(protocol.RecordingFinished)
	}
	o.drainEncode()
	o.reg.StopComponents()
	o.closeSource()
}
