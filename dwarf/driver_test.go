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
	"testing"

	"github.com/jetsetilly/dwarfloader/test"
)

func twoCUFixture() []*dwarf.Entry {
	return []*dwarf.Entry{
		entry(0x00, dwarf.TagCompileUnit, true, strField(dwarf.AttrName, "a.c")),
		entry(0, 0, false),
		entry(0x100, dwarf.TagCompileUnit, true, strField(dwarf.AttrName, "b.c")),
		entry(0, 0, false),
	}
}

func TestLoadFileKeepsEveryCUByDefault(t *testing.T) {
	r := &fixtureReader{entries: twoCUFixture()}
	file, err := loadFile(r, 8, binary.LittleEndian, DefaultLoadConfig())
	test.Equate(t, err, nil)
	test.Equate(t, len(file.CUs), 2)
	test.Equate(t, file.CUs[0].Filename, "a.c")
	test.Equate(t, file.CUs[1].Filename, "b.c")
}

func TestLoadFileStealerCanDropACU(t *testing.T) {
	r := &fixtureReader{entries: twoCUFixture()}

	var seen []string
	cfg := DefaultLoadConfig()
	cfg.Stealer = StealerFunc(func(cu *CU) StealerVerdict {
		seen = append(seen, cu.Filename)
		if cu.Filename == "a.c" {
			return Stolen
		}
		return KeepIt
	})

	file, err := loadFile(r, 8, binary.LittleEndian, cfg)
	test.Equate(t, err, nil)
	test.Equate(t, len(seen), 2)
	test.Equate(t, len(file.CUs), 1)
	test.Equate(t, file.CUs[0].Filename, "b.c")
}

func TestLoadFileStealerCanAbort(t *testing.T) {
	r := &fixtureReader{entries: twoCUFixture()}

	cfg := DefaultLoadConfig()
	cfg.Stealer = StealerFunc(func(cu *CU) StealerVerdict {
		return StopLoading
	})

	_, err := loadFile(r, 8, binary.LittleEndian, cfg)
	test.ExpectFailure(t, err == nil)
}

func TestLoadFileWithNoCUsReturnsEmptyFile(t *testing.T) {
	r := &fixtureReader{}
	file, err := loadFile(r, 8, binary.LittleEndian, DefaultLoadConfig())
	test.Equate(t, err, nil)
	test.Equate(t, len(file.CUs), 0)
}

func TestLoadFilePopulatesSizeCacheBeforeHandingCUToStealer(t *testing.T) {
	entries := []*dwarf.Entry{
		entry(0x00, dwarf.TagCompileUnit, true, strField(dwarf.AttrName, "main.c")),
		entry(0x10, dwarf.TagBaseType, false, strField(dwarf.AttrName, "int"), constField(dwarf.AttrByteSize, 4), constField(dwarf.AttrEncoding, 5)),
		entry(0x20, dwarf.TagVariable, false, strField(dwarf.AttrName, "counter"), refField(dwarf.AttrType, 0x10)),
		entry(0, 0, false),
	}
	r := &fixtureReader{entries: entries}

	var sawStealerSizes bool
	cfg := DefaultLoadConfig()
	cfg.Stealer = StealerFunc(func(cu *CU) StealerVerdict {
		sawStealerSizes = cu.Sizes != nil && cu.Sizes.ByteSize(cu.Variables[0].Type) == 4
		return KeepIt
	})

	file, err := loadFile(r, 8, binary.LittleEndian, cfg)
	test.Equate(t, err, nil)
	test.ExpectSuccess(t, sawStealerSizes)
	test.ExpectSuccess(t, file.CUs[0].Sizes != nil)
}
