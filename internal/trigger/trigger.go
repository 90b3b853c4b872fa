// Package trigger drives a DLP-IO8-G USB trigger box over serial, used
// to mark stimulus onsets and responses for external recording
// equipment. The whole package is optional: lab setups without the box
// simply leave the device unconfigured.
package trigger

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Line markers used by the runner.
const (
	LineStimulus = "2"
	LineResponse = "4"
)

// Box is an open DLP-IO8-G device in binary mode.
type Box struct {
	port serial.Port
}

// Open connects to the device, verifies it with a ping and switches it
// to binary mode.
func Open(device string, baud int) (*Box, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", device, err)
	}

	b := &Box{port: port}
	if err := b.ping(); err != nil {
		port.Close()
		return nil, err
	}

	// 0x5C switches the device to binary mode.
	if _, err := port.Write([]byte{0x5C}); err != nil {
		port.Close()
		return nil, fmt.Errorf("enabling binary mode: %w", err)
	}
	return b, nil
}

func (b *Box) ping() error {
	if _, err := b.port.Write([]byte{0x27}); err != nil {
		return fmt.Errorf("pinging device: %w", err)
	}
	buf := make([]byte, 1)
	n, err := b.port.Read(buf)
	if err != nil || n != 1 || buf[0] != 'Q' {
		return fmt.Errorf("device did not answer ping")
	}
	return nil
}

// Set raises the given output lines ("1".."8").
func (b *Box) Set(lines string) error {
	if _, err := b.port.Write([]byte(lines)); err != nil {
		return fmt.Errorf("setting lines %s: %w", lines, err)
	}
	return nil
}

// Unset lowers the given output lines. The device clears a line with
// the letter on the same key as its digit.
func (b *Box) Unset(lines string) error {
	cmd := []byte(lines)
	for i := range cmd {
		switch cmd[i] {
		case '1':
			cmd[i] = 'Q'
		case '2':
			cmd[i] = 'W'
		case '3':
			cmd[i] = 'E'
		case '4':
			cmd[i] = 'R'
		case '5':
			cmd[i] = 'T'
		case '6':
			cmd[i] = 'Y'
		case '7':
			cmd[i] = 'U'
		case '8':
			cmd[i] = 'I'
		}
	}
	if _, err := b.port.Write(cmd); err != nil {
		return fmt.Errorf("clearing lines %s: %w", lines, err)
	}
	return nil
}

// Pulse raises the lines for the given duration and lowers them again.
func (b *Box) Pulse(lines string, d time.Duration) error {
	if err := b.Set(lines); err != nil {
		return err
	}
	time.Sleep(d)
	return b.Unset(lines)
}

// Close releases the serial port.
func (b *Box) Close() error {
	if b.port == nil {
		return nil
	}
	return b.port.Close()
}
