package core

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/banshee-data/trackcore/internal/arena"
	"github.com/banshee-data/trackcore/internal/component"
	"github.com/banshee-data/trackcore/internal/protocol"
)

// apply validates and applies every command except Shutdown. A rejected
// command leaves the state unchanged.
func (o *Orchestrator) apply(cmd protocol.Command) error {
	switch cmd.Kind {
	case protocol.CmdSeek:
		if cmd.Frame == nil {
			return invalid("seek without frame")
		}
		return o.seek(*cmd.Frame)

	case protocol.CmdPlaybackState:
		if cmd.Playback == nil {
			return invalid("playback state missing")
		}
		return o.setPlayback(*cmd.Playback)

	case protocol.CmdRecordingState:
		if cmd.Recording == nil {
			return invalid("recording state missing")
		}
		return o.setRecording(*cmd.Recording, cmd.RecordingConfig)

	case protocol.CmdRealtimeMode:
		if cmd.Realtime == nil {
			return invalid("realtime mode missing")
		}
		o.state.RealtimeMode = *cmd.Realtime
		return nil

	case protocol.CmdUndistortMode:
		if cmd.Undistort == nil {
			return invalid("undistort mode missing")
		}
		if *cmd.Undistort != protocol.UndistortNone && o.opts.Undistorter == nil {
			return invalid("undistort mode %s needs camera calibration", *cmd.Undistort)
		}
		o.state.UndistortMode = *cmd.Undistort
		return nil

	case protocol.CmdTargetFPS:
		if cmd.FPS == nil || !validFPS(*cmd.FPS) {
			return invalid("target fps must be a positive number")
		}
		o.state.TargetFPS = *cmd.FPS
		o.ticker.Reset(framePeriod(*cmd.FPS))
		return nil

	case protocol.CmdArena:
		if cmd.Arena == nil {
			return invalid("arena missing")
		}
		g, err := arena.New(*cmd.Arena)
		if err != nil {
			return invalid("%v", err)
		}
		o.geometry = g
		o.state.Arena = g.Arena()
		return nil

	case protocol.CmdAddEntity:
		o.addEntity()
		return nil

	case protocol.CmdRemoveEntity:
		return o.removeEntity(cmd.EntityID)

	case protocol.CmdComponentConfig:
		if cmd.Component == nil {
			return invalid("component config missing")
		}
		return o.configureComponent(*cmd.Component)

	default:
		return invalid("unknown command %q", cmd.Kind)
	}
}

// seek aborts the running decode and track steps and decodes the target
// frame. Late results of the aborted steps are discarded.
func (o *Orchestrator) seek(frame uint32) error {
	if o.sourceClosed {
		return invalid("frame source is closed")
	}
	if info := o.state.VideoInfo; info != nil && info.FrameCount > 0 && frame >= info.FrameCount {
		return invalid("frame %d beyond end of stream (%d frames)", frame, info.FrameCount)
	}
	o.abort()
	o.state.LastFeatures = nil
	if o.state.PlaybackState == protocol.EndOfStream {
		o.state.PlaybackState = protocol.Paused
	}
	o.startDecode(&frame)
	return nil
}

func (o *Orchestrator) setPlayback(s protocol.PlaybackState) error {
	switch s {
	case protocol.Playing:
		if o.sourceClosed {
			return invalid("frame source is closed")
		}
		if o.state.PlaybackState != protocol.Playing {
			// Restart pacing so resuming does not fire a stale tick.
			o.ticker.Reset(framePeriod(o.state.TargetFPS))
		}
	case protocol.Paused, protocol.EndOfStream:
	default:
		return invalid("unknown playback state %d", s)
	}
	o.state.PlaybackState = s
	return nil
}

func (o *Orchestrator) setRecording(s protocol.RecordingState, cfg *protocol.RecordingConfig) error {
	current := o.state.RecordingState
	switch s {
	case protocol.Recording:
		if current == protocol.Recording {
			return nil
		}
		if cfg == nil {
			cfg = o.state.RecordingConfig
		}
		if cfg == nil {
			return invalid("recording needs a recording config")
		}
		if cfg.StreamID == "" || cfg.Path == "" {
			return invalid("recording config needs stream id and path")
		}
		return o.startRecording(*cfg)

	case protocol.RecordingFinished, protocol.RecordingInitial, protocol.RecordingReplay:
		if current == protocol.Recording {
			o.stopRecording(s)
			return nil
		}
		o.state.RecordingState = s
		if cfg != nil {
			o.state.RecordingConfig = cfg
		}
		return nil

	default:
		return invalid("unknown recording state %d", s)
	}
}

func (o *Orchestrator) addEntity() uint32 {
	o.entityCounter++
	o.state.EntityIDs = append(o.state.EntityIDs, o.entityCounter)
	return o.entityCounter
}

// removeEntity drops id, or the most recently added identity when id is
// nil. Slices are rebuilt because snapshots may share their arrays.
func (o *Orchestrator) removeEntity(id *uint32) error {
	ids := o.state.EntityIDs
	if len(ids) == 0 {
		return invalid("no entities to remove")
	}
	target := ids[len(ids)-1]
	if id != nil {
		target = *id
	}

	kept := make([]uint32, 0, len(ids))
	for _, v := range ids {
		if v != target {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(ids) {
		return invalid("entity %d not found", target)
	}
	o.state.EntityIDs = kept

	var entities []protocol.Entity
	for _, e := range o.state.LastEntities {
		if e.ID != target {
			entities = append(entities, e)
		}
	}
	o.state.LastEntities = entities
	return nil
}

// configureComponent records the new configuration and pushes it in the
// background.
func (o *Orchestrator) configureComponent(cfg protocol.ComponentConfig) error {
	push, err := o.reg.PrepareConfig(cfg)
	if err != nil {
		if errors.Is(err, component.ErrUnknownComponent) {
			return invalid("component %q not found", cfg.ID)
		}
		return invalid("%v", err)
	}
	o.state.Components = o.reg.Configs()

	ctx, timeout, log := o.runCtx, o.opts.RecorderTimeout, o.log
	go func() {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := push(ctx); err != nil {
			log.Error("configuring component", zap.String("component", cfg.ID), zap.Error(err))
		}
	}()
	return nil
}
