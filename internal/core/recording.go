package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/banshee-data/trackcore/internal/protocol"
)

// startRecording opens a sink for cfg and clears the track history. Track
// frame 0 is the frame after the latest one, the first the sink can get
// from a sequential source.
func (o *Orchestrator) startRecording(cfg protocol.RecordingConfig) error {
	if o.opts.SinkFactory == nil {
		return invalid("recording is not supported without a sink")
	}
	sink, err := o.opts.SinkFactory(cfg)
	if err != nil {
		return invalid("open recording %q: %v", cfg.Path, err)
	}
	o.sink = sink
	o.state.RecordingConfig = &cfg
	o.state.RecordingState = protocol.Recording
	var origin uint32
	if img := o.state.LastImage; img != nil {
		origin = img.FrameNumber + 1
	}
	o.tracks.Reset(origin)
	if o.state.Skeleton != nil {
		o.tracks.SetSkeleton(o.state.Skeleton)
	}
	o.log.Info("recording started", zap.String("stream", cfg.StreamID), zap.String("path", cfg.Path))
	return nil
}

// stopRecording queues the sink close behind the frames already queued.
// Tracks go to the recorder only when the recording finishes normally.
func (o *Orchestrator) stopRecording(next protocol.RecordingState) {
	if o.sink != nil {
		job := encodeJob{finish: &finishJob{sink: o.sink, save: next == protocol.RecordingFinished}}
		if cfg := o.state.RecordingConfig; cfg != nil {
			job.finish.config = *cfg
		}
		if job.finish.save {
			job.finish.tracks = o.tracks.Records()
		}
		o.sink = nil
		o.enqueueEncode(job)
	}
	o.state.RecordingState = next
	if next == protocol.RecordingFinished {
		o.state.RecordingConfig = nil
	}
}

func (o *Orchestrator) enqueueEncode(job encodeJob) {
	if job.finish == nil {
		job.sink = o.sink
	}
	o.encodeQueue = append(o.encodeQueue, job)
	o.pumpEncode()
}

// pumpEncode starts the next queued job when the encoder is idle. Jobs run
// one at a time in queue order.
func (o *Orchestrator) pumpEncode() {
	if o.encode != nil || len(o.encodeQueue) == 0 {
		return
	}
	job := o.encodeQueue[0]
	o.encodeQueue[0] = encodeJob{}
	o.encodeQueue = o.encodeQueue[1:]

	t, _ := o.newTask(job.image.FrameNumber)
	o.encode = t
	go func() {
		defer t.cancel()
		var err error
		if job.finish != nil {
			err = job.finish.sink.Close()
		} else {
			err = job.sink.AddFrame(job.image, job.payload)
		}
		select {
		case o.encodeDone <- encodeResult{generation: t.generation, job: job, err: err}:
		case <-o.done:
		}
	}()
}

func (o *Orchestrator) onEncode(res encodeResult) {
	o.completeEncode(res, false)
	o.pumpEncode()
}

func (o *Orchestrator) completeEncode(res encodeResult, wait bool) {
	if o.stale(o.encode, res.generation, "encode") {
		return
	}
	o.encode = nil

	if f := res.job.finish; f != nil {
		if res.err != nil {
			o.log.Error("closing recording", zap.String("path", f.config.Path), zap.Error(res.err))
		} else {
			o.log.Info("recording closed", zap.String("path", f.config.Path))
		}
		if f.save {
			o.saveTracks(f, wait)
		}
		return
	}

	if res.err != nil {
		o.metrics.EncodeErrors.Inc()
		o.state.Metrics.EncodeErrors++
		o.log.Warn("encoding frame", zap.Uint32("frame", res.job.image.FrameNumber), zap.Error(res.err))
		return
	}
	o.metrics.FramesEncoded.Inc()
	o.state.Metrics.EncodedFrames++
}

// drainEncode runs the encoder queue to completion. Each job gets the
// recorder timeout; a job that exceeds it is abandoned.
func (o *Orchestrator) drainEncode() {
	for o.encode != nil || len(o.encodeQueue) > 0 {
		o.pumpEncode()
		select {
		case res := <-o.encodeDone:
			o.completeEncode(res, true)
		case <-o.opts.Clock.After(o.opts.RecorderTimeout):
			o.log.Error("encoder did not finish, abandoning recording", zap.Int("queued", len(o.encodeQueue)))
			o.encode = nil
			o.encodeQueue = nil
			return
		}
	}
}

// saveTracks hands the finished tracks to the recorder component, if one is
// connected.
func (o *Orchestrator) saveTracks(f *finishJob, wait bool) {
	rec, ok := o.reg.Recorder()
	if !ok {
		o.log.Debug("no recorder connected, tracks not saved", zap.Int("tracks", len(f.tracks)))
		return
	}
	req := &protocol.SaveTracksRequest{Recording: f.config, Tracks: f.tracks}
	timeout := o.opts.RecorderTimeout
	log := o.log
	save := func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := rec.SaveTracks(ctx, req); err != nil {
			log.Error("saving tracks", zap.String("path", req.Recording.Path), zap.Error(err))
			return
		}
		log.Info("tracks saved", zap.String("path", req.Recording.Path), zap.Int("tracks", len(req.Tracks)))
	}
	if wait {
		save()
		return
	}
	go save()
}
