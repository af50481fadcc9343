package interp

import (
	"io"

	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/values"
)

// execOpen opens a file on a numbered channel. Re-OPENing a channel
// number that's already in use closes the old one first rather than
// erroring, matching how the rest of the runtime favors silent
// replacement over a hard failure on re-use.
func (rt *Runtime) execOpen(s *ast.OpenStatement) error {
	pathVal, err := rt.Eval(s.Path)
	if err != nil {
		return err
	}
	chanVal, err := rt.Eval(s.Channel)
	if err != nil {
		return err
	}
	n := int(values.AsInt32(chanVal))
	path := values.AsString(pathVal)

	if old, ok := rt.channels[n]; ok {
		old.close()
		delete(rt.channels, n)
	}

	state := &channelState{mode: s.Mode}
	if s.Mode == ast.OpenInput {
		r, err := rt.fs.OpenForRead(path)
		if err != nil {
			return err
		}
		state.reader = r
	} else {
		w, err := rt.fs.OpenForWrite(path, s.Mode)
		if err != nil {
			return err
		}
		state.writer = w
	}
	rt.channels[n] = state
	return nil
}

// execClose closes the listed channels, or every open channel if none
// were named. Closing a channel number that isn't open is a no-op: OPEN
// and CLOSE are the only statements that mention a channel by its bare
// number rather than through an already-open handle, so there's nothing
// for an unknown number to have broken.
func (rt *Runtime) execClose(s *ast.CloseStatement) error {
	if len(s.Channels) == 0 {
		rt.closeAllChannels()
		return nil
	}
	for _, expr := range s.Channels {
		v, err := rt.Eval(expr)
		if err != nil {
			return err
		}
		n := int(values.AsInt32(v))
		if ch, ok := rt.channels[n]; ok {
			ch.close()
			delete(rt.channels, n)
		}
	}
	return nil
}

func (rt *Runtime) execInputChannel(s *ast.InputStatement) error {
	n, err := rt.evalChannel(s.Channel)
	if err != nil {
		return err
	}
	ch, ok := rt.channels[n]
	if !ok || ch.reader == nil {
		return berrors.NewRuntimeError(0, "%s", berrors.ChannelNotOpenForInput(n))
	}
	for _, target := range s.Targets {
		field, err := rt.nextChannelField(n, ch)
		if err != nil {
			return err
		}
		if target.IsString() {
			if err := rt.assign(target, values.Text(field)); err != nil {
				return err
			}
			continue
		}
		num, valid := strictParseNumber(field)
		if !valid {
			return berrors.NewRuntimeError(0, "%s", berrors.InvalidNumericInput(field))
		}
		if err := rt.assign(target, values.Number(num)); err != nil {
			return err
		}
	}
	return nil
}

// nextChannelField draws the next comma-separated field from channel n,
// reading and splitting another line once the buffered fields run out.
func (rt *Runtime) nextChannelField(n int, ch *channelState) (string, error) {
	for len(ch.pendingFields) == 0 {
		line, err := ch.reader.ReadLine()
		if err != nil {
			if err == io.EOF {
				return "", berrors.NewRuntimeError(0, "%s", berrors.EndOfFile(n))
			}
			return "", err
		}
		ch.pendingFields = splitFields(line)
	}
	field := ch.pendingFields[0]
	ch.pendingFields = ch.pendingFields[1:]
	return field, nil
}

func (rt *Runtime) evalChannel(expr ast.Expression) (int, error) {
	v, err := rt.Eval(expr)
	if err != nil {
		return 0, err
	}
	return int(values.AsInt32(v)), nil
}
