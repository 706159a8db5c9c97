package clockconfig

import (
	"github.com/yasdfgr/id100/protocol"
)

// ClockConfig represents a complete parsed clock-configuration file.
type ClockConfig struct {
	// Pages contains the flash pages to be written, in file order
	Pages []*Page
}

// Page is a single flash configuration page from the file.
type Page struct {
	// Number is the destination flash page number
	Number uint16

	// Data is the page content
	Data [protocol.FlashPageDataSize]byte
}

// Record converts the page into the request record for the Set Flash
// Clock Config command.
func (p *Page) Record() *protocol.FlashClockConfig {
	cfg := &protocol.FlashClockConfig{PageNumber: p.Number}
	cfg.Config = p.Data
	return cfg
}
