package protocol

import "fmt"

// CommandKind names one of the orchestrator commands.
type CommandKind string

const (
	CmdSeek            CommandKind = "seek"
	CmdShutdown        CommandKind = "shutdown"
	CmdPlaybackState   CommandKind = "playback_state"
	CmdRecordingState  CommandKind = "recording_state"
	CmdRealtimeMode    CommandKind = "realtime_mode"
	CmdUndistortMode   CommandKind = "undistort_mode"
	CmdTargetFPS       CommandKind = "target_fps"
	CmdArena           CommandKind = "arena"
	CmdAddEntity       CommandKind = "add_entity"
	CmdRemoveEntity    CommandKind = "remove_entity"
	CmdComponentConfig CommandKind = "component_config"
)

// Command is a request to change the experiment. Kind selects which of
// the payload fields is read; the rest are ignored.
type Command struct {
	Kind CommandKind `json:"kind"`

	Frame           *uint32          `json:"frame,omitempty"`
	Playback        *PlaybackState   `json:"playback,omitempty"`
	Recording       *RecordingState  `json:"recording,omitempty"`
	RecordingConfig *RecordingConfig `json:"recording_config,omitempty"`
	Realtime        *bool            `json:"realtime,omitempty"`
	Undistort       *UndistortMode   `json:"undistort,omitempty"`
	FPS             *float64         `json:"fps,omitempty"`
	Arena           *Arena           `json:"arena,omitempty"`
	EntityID        *uint32          `json:"entity_id,omitempty"`
	Component       *ComponentConfig `json:"component,omitempty"`
}

func (c Command) String() string {
	switch c.Kind {
	case CmdSeek:
		if c.Frame != nil {
			return fmt.Sprintf("seek(%d)", *c.Frame)
		}
	case CmdTargetFPS:
		if c.FPS != nil {
			return fmt.Sprintf("target_fps(%g)", *c.FPS)
		}
	case CmdPlaybackState:
		if c.Playback != nil {
			return "playback_state(" + c.Playback.String() + ")"
		}
	case CmdRecordingState:
		if c.Recording != nil {
			return "recording_state(" + c.Recording.String() + ")"
		}
	}
	return string(c.Kind)
}

func SeekCommand(frame uint32) Command { return Command{Kind: CmdSeek, Frame: &frame} }

func ShutdownCommand() Command { return Command{Kind: CmdShutdown} }

func PlaybackCommand(s PlaybackState) Command { return Command{Kind: CmdPlaybackState, Playback: &s} }

// RecordingCommand changes the recording state. cfg may be nil when a
// recording configuration is already set.
func RecordingCommand(s RecordingState, cfg *RecordingConfig) Command {
	return Command{Kind: CmdRecordingState, Recording: &s, RecordingConfig: cfg}
}

func RealtimeCommand(on bool) Command { return Command{Kind: CmdRealtimeMode, Realtime: &on} }

func UndistortCommand(m UndistortMode) Command { return Command{Kind: CmdUndistortMode, Undistort: &m} }

func TargetFPSCommand(fps float64) Command { return Command{Kind: CmdTargetFPS, FPS: &fps} }

func ArenaCommand(a Arena) Command { return Command{Kind: CmdArena, Arena: &a} }

func AddEntityCommand() Command { return Command{Kind: CmdAddEntity} }

// RemoveEntityCommand removes id, or the most recently added identity when
// id is nil.
func RemoveEntityCommand(id *uint32) Command { return Command{Kind: CmdRemoveEntity, EntityID: id} }

func ComponentConfigCommand(cfg ComponentConfig) Command {
	return Command{Kind: CmdComponentConfig, Component: &cfg}
}
