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

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jetsetilly/dwarfloader/dwarf"
	"github.com/jetsetilly/dwarfloader/elfhost"
	"github.com/jetsetilly/dwarfloader/logger"
)

var loadStopAfter int

var loadCmd = &cobra.Command{
	Use:   "load <elf-file>",
	Short: "Load an ELF binary's DWARF data and summarise each compilation unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	RootCmd.AddCommand(loadCmd)
	loadCmd.Flags().IntVar(&loadStopAfter, "stop-after", 0, "abort after this many compilation units (0 = load all)")
	loadCmd.Flags().Bool("extra-debug-info", false, "keep raw cross-reference offsets and decl-file/line after resolution")
	loadCmd.Flags().Bool("addr-info", false, "decode low_pc/high_pc and variable/label addresses")
	loadCmd.Flags().Bool("fixup-silly-bitfields", false, "normalize bitfields whose width equals their container's width")
	_ = viper.BindPFlag("extra-debug-info", loadCmd.Flags().Lookup("extra-debug-info"))
	_ = viper.BindPFlag("addr-info", loadCmd.Flags().Lookup("addr-info"))
	_ = viper.BindPFlag("fixup-silly-bitfields", loadCmd.Flags().Lookup("fixup-silly-bitfields"))
}

// stopAfterN is the Stealer installed when --stop-after is non-zero.
type stopAfterN struct {
	remaining int
}

func (s *stopAfterN) CompileUnitLoaded(cu *dwarf.CU) dwarf.StealerVerdict {
	if s.remaining <= 0 {
		return dwarf.StopLoading
	}
	s.remaining--
	return dwarf.KeepIt
}

func runLoad(_ *cobra.Command, args []string) error {
	host, err := elfhost.Open(args[0])
	if err != nil {
		return err
	}

	cfg := dwarf.DefaultLoadConfig()
	if !viper.GetBool("verbose") {
		cfg.LogPermission = logger.Deny
	}
	cfg.ExtraDebugInfo = viper.GetBool("extra-debug-info")
	cfg.GetAddrInfo = viper.GetBool("addr-info")
	cfg.FixupSillyBitfields = viper.GetBool("fixup-silly-bitfields")
	if loadStopAfter > 0 {
		cfg.Stealer = &stopAfterN{remaining: loadStopAfter}
	}

	file, err := dwarf.Load(host, cfg)
	if err != nil {
		return fmt.Errorf("dwarfload: %w", err)
	}

	for i, cu := range file.CUs {
		fmt.Fprintf(os.Stdout, "CU %d: %q  types=%d tags=%d functions=%d variables=%d bitfields=%d\n",
			i, cu.Filename, len(cu.Types), len(cu.Tags), len(cu.Functions), len(cu.Variables), len(cu.Bitfields))
	}

	return nil
}
