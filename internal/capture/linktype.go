package capture

import (
	"fmt"
	"strings"

	"github.com/google/gopacket/layers"

	"firestige.xyz/evdump/internal/core"
	"firestige.xyz/evdump/internal/evdev"
)

// decoders maps a pcap link type to its payload decoder. Every other link
// type is a placeholder that reports core.ErrUnsupportedLinkType.
var decoders = map[uint32]core.PayloadDecoder{
	core.LinkTypeLinuxEvdev: evdev.Decoder{},
}

// LookupLinkType returns the payload decoder for lt.
func LookupLinkType(lt uint32) (core.PayloadDecoder, error) {
	d, ok := decoders[lt]
	if !ok {
		return nil, fmt.Errorf("link type %d (%s): %w", lt, LinkTypeName(lt), core.ErrUnsupportedLinkType)
	}
	return d, nil
}

// LinkTypeName names a pcap link type.
func LinkTypeName(lt uint32) string {
	if lt == core.LinkTypeLinuxEvdev {
		return "LINUX_EVDEV"
	}
	if lt < 256 {
		name := layers.LinkType(lt).String()
		if name != "" && !strings.HasPrefix(name, "Unknown") {
			return name
		}
	}
	return fmt.Sprintf("LINKTYPE_%d", lt)
}
