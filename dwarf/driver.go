// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package dwarf

import (
	"debug/dwarf"
	"encoding/binary"

	"github.com/jetsetilly/dwarfloader/elfhost"
	"github.com/jetsetilly/dwarfloader/errors"
	"github.com/jetsetilly/dwarfloader/logger"
	"github.com/jetsetilly/dwarfloader/strtab"
)

// StealerVerdict is returned by a Stealer after it has been shown a
// compilation unit, telling Load what to do with it next.
type StealerVerdict int

const (
	// KeepIt keeps the CU in the File's result and continues loading.
	KeepIt StealerVerdict = iota

	// Stolen drops the CU from the File's result (the Stealer has already
	// taken whatever it wanted from it, typically by caching Nodes it
	// reached through the callback's CU argument before returning) and
	// continues loading the next one.
	Stolen

	// StopLoading drops the current CU and aborts the load entirely;
	// Load returns errors.LoadAborted to the caller.
	StopLoading
)

// Stealer lets a caller inspect, and optionally discard, each compilation
// unit as it finishes loading, without waiting for the whole file to
// load first. A caller with no interest in streaming can pass nil to
// Load, which is equivalent to a Stealer that always returns KeepIt.
type Stealer interface {
	CompileUnitLoaded(cu *CU) StealerVerdict
}

// StealerFunc adapts a plain function to the Stealer interface.
type StealerFunc func(cu *CU) StealerVerdict

func (f StealerFunc) CompileUnitLoaded(cu *CU) StealerVerdict { return f(cu) }

// LoadConfig controls a single call to Load. It has exactly the options
// the specification's load configuration names, plus the ambient
// LogPermission knob every subsystem in this codebase takes.
type LoadConfig struct {
	// ExtraDebugInfo keeps each Node's raw cross-reference offsets and
	// decl_file/decl_line around after resolution, instead of letting
	// Load discard them once every reference has been rewritten to a
	// small_id. Off by default, since nothing downstream of Load needs
	// the raw offsets once resolution has run.
	ExtraDebugInfo bool

	// GetAddrInfo decodes DW_AT_low_pc/DW_AT_high_pc for subprograms,
	// lexical blocks and inlined subroutines, and the static address of
	// a variable or label, when set. Left off by default these all read
	// as zero/unset, since address info is only useful to a caller doing
	// address-to-source lookups, not one only inspecting types.
	GetAddrInfo bool

	// FixupSillyBitfields normalizes a bitfield member whose declared
	// width equals its underlying type's full storage width, clearing
	// its bitfield flag instead of leaving it as a (pointless) bitfield
	// of the type's own size.
	FixupSillyBitfields bool

	// Stealer is consulted after each CU is built and resolved. Nil means
	// keep every CU.
	Stealer Stealer

	// LogPermission gates whether diagnostics raised during this load are
	// written through to the logger package at all.
	LogPermission logger.Permission
}

// DefaultLoadConfig returns a LoadConfig that keeps every CU and always
// logs.
func DefaultLoadConfig() LoadConfig {
	return LoadConfig{LogPermission: logger.Allow}
}

// Load reads every compilation unit out of host's DWARF data and returns
// the fully resolved model described by this package's doc comment.
//
// debug/dwarf normalises DWARF v2 through v5 producer records into the
// same Entry/Field shape before this package ever sees them, so Load
// itself has no separate version gate; the loader's v2-v4 scope instead
// comes from the offset-based small_id resolution in resolve.go, which
// assumes the classic compile-unit-local reference forms those versions
// use rather than v5's unified string and range tables. Load returns an
// error, rather than a partial File, if host carries no DWARF data at
// all, or if the Stealer in cfg returns StopLoading.
func Load(host elfhost.Host, cfg LoadConfig) (*File, error) {
	data, err := host.DWARF()
	if err != nil {
		return nil, errors.Errorf(errors.ELFOpenError, err)
	}
	return loadFileWithRanges(data.Reader(), host.PointerSize(), host.ByteOrder(), data.Ranges, cfg)
}

// loadFile drives the per-CU read/build/resolve/recode pipeline over r
// until it is exhausted, applying cfg's Stealer after each CU settles.
// Factored out of Load so tests can replay a fixtureReader instead of
// needing a real ELF binary's *dwarf.Data. It has no DW_AT_ranges
// decoder available, so an inlined subroutine with a zero-width
// low_pc/high_pc pair is left with empty ranges; loadFileWithRanges is
// the variant Load itself calls.
func loadFile(r dwarfReader, pointerSize int, byteOrder binary.ByteOrder, cfg LoadConfig) (*File, error) {
	return loadFileWithRanges(r, pointerSize, byteOrder, nil, cfg)
}

// loadFileWithRanges is loadFile plus a DW_AT_ranges decoder bound to the
// backing dwarf.Data, used to compute an inlined subroutine's size when
// it has no contiguous low_pc/high_pc span.
func loadFileWithRanges(r dwarfReader, pointerSize int, byteOrder binary.ByteOrder, ranges func(*dwarf.Entry) ([][2]uint64, error), cfg LoadConfig) (*File, error) {
	if cfg.LogPermission == nil {
		cfg.LogPermission = logger.Allow
	}
	diag := newDiagnostics(cfg.LogPermission)

	opts := &buildOpts{
		strings:     strtab.New(),
		getAddrInfo: cfg.GetAddrInfo,
		byteOrder:   byteOrder,
		pointerSize: pointerSize,
		ranges:      ranges,
	}
	result := &File{Strings: opts.strings}

	for {
		root, _, err := readCU(r)
		if err != nil {
			return nil, errors.Errorf(errors.AssertionFailure, err)
		}
		if root == nil {
			break
		}

		cu, verdict, err := loadOneCU(root, opts, diag, cfg, pointerSize)
		if err != nil {
			return nil, err
		}
		switch verdict {
		case StopLoading:
			return nil, errors.Errorf(errors.LoadAborted)
		case Stolen:
			// dropped; the Stealer already took what it needed
		default:
			result.CUs = append(result.CUs, cu)
		}
	}

	return result, nil
}

// loadOneCU runs the build, resolve, bitfield-recode and size-cache passes
// over a single CU's DIE tree and asks cfg.Stealer what to do with the
// result. Once the size cache has settled, it discards each Node's raw
// cross-reference metadata unless cfg.ExtraDebugInfo asked to keep it, per
// the specification's Tag.raw lifetime rule.
func loadOneCU(root *dieNode, opts *buildOpts, diag *Diagnostics, cfg LoadConfig, pointerSize int) (*CU, StealerVerdict, error) {
	cu := newCU(attrString(root.entry, dwarf.AttrName), pointerSize)

	if err := buildCU(cu, root, opts, diag); err != nil {
		return nil, KeepIt, err
	}

	resolveCU(cu, diag)
	recodeBitfields(cu, diag, cfg.FixupSillyBitfields)

	cu.Sizes = NewSizeCache(cu)
	cacheMemberSizes(cu, cu.Sizes, opts.strings)

	if !cfg.ExtraDebugInfo {
		clearCURawMetadata(cu)
	}

	if cfg.Stealer == nil {
		return cu, KeepIt, nil
	}
	return cu, cfg.Stealer.CompileUnitLoaded(cu), nil
}
