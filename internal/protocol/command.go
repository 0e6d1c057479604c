package protocol

import "fmt"

// CommandCode identifies an EXECUTE_COMMAND request's command, mirroring
// the devproto_cmd_type_t catalogue (RESTART_SERVICE through CUSTOM_SHELL).
type CommandCode uint8

const (
	CmdRestartService   CommandCode = 0x01
	CmdClearCache       CommandCode = 0x02
	CmdRotateLogs       CommandCode = 0x03
	CmdSetFanSpeed      CommandCode = 0x04
	CmdSetPowerMode     CommandCode = 0x05
	CmdCalibrateAntenna CommandCode = 0x06
	CmdSwitchChannel    CommandCode = 0x07
	CmdEnableFilter     CommandCode = 0x08
	CmdBlockIP          CommandCode = 0x09
	CmdRunDiagnostic    CommandCode = 0x0A
	CmdCustomShell      CommandCode = 0xFF
)

// CommandPayload is an EXECUTE_COMMAND request payload: a command code
// followed by opaque, command-specific parameter bytes.
type CommandPayload struct {
	Code   CommandCode
	Params []byte
}

// Encode writes [Code, Params...] to out.
func (c CommandPayload) Encode(out []byte) (int, error) {
	n := 1 + len(c.Params)
	if len(out) < n {
		return 0, fmt.Errorf("command payload: %w: buffer too short", ErrInvalid)
	}
	out[0] = byte(c.Code)
	copy(out[1:n], c.Params)
	return n, nil
}

// DecodeCommandPayload parses an EXECUTE_COMMAND payload.
func DecodeCommandPayload(data []byte) (CommandPayload, error) {
	if len(data) < 1 {
		return CommandPayload{}, fmt.Errorf("command payload: %w: empty", ErrInvalid)
	}
	return CommandPayload{Code: CommandCode(data[0]), Params: data[1:]}, nil
}

// CommandResultPayload is a COMMAND_RESULT response payload: a success
// flag, a shell-style return code, and UTF-8 output.
type CommandResultPayload struct {
	Success    bool
	ReturnCode uint8
	Output     string
}

// Encode writes [success, return_code, output...] to out.
func (r CommandResultPayload) Encode(out []byte) (int, error) {
	n := 2 + len(r.Output)
	if len(out) < n {
		return 0, fmt.Errorf("command result: %w: buffer too short", ErrInvalid)
	}
	if r.Success {
		out[0] = 0x01
	} else {
		out[0] = 0x00
	}
	out[1] = r.ReturnCode
	copy(out[2:n], r.Output)
	return n, nil
}

// DecodeCommandResult parses a COMMAND_RESULT payload.
func DecodeCommandResult(data []byte) (CommandResultPayload, error) {
	if len(data) < 2 {
		return CommandResultPayload{}, fmt.Errorf("command result: %w: too short", ErrInvalid)
	}
	return CommandResultPayload{
		Success:    data[0] != 0x00,
		ReturnCode: data[1],
		Output:     string(data[2:]),
	}, nil
}
