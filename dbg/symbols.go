package dbg

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"
)

// Image is one loaded Mach-O image in the target.
type Image struct {
	Path        string `json:"pathname"`
	LoadAddress uint64 `json:"load_address"`
}

// Contains reports whether the image path ends with name.
func (im Image) Contains(name string) bool {
	return strings.HasSuffix(im.Path, name)
}

// LoadedImages fetches the target's image list through the LLDB-extension
// JSON query.
func (cl *Client) LoadedImages() ([]Image, error) {
	reply, err := cl.c.roundTrip(`jGetLoadedDynamicLibrariesInfos:{"fetch_all_solibs":true}`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image list: %w", err)
	}

	var parsed struct {
		Images []Image `json:"images"`
	}

	if err := json.Unmarshal([]byte(reply), &parsed); err != nil {
		return nil, fmt.Errorf("malformed image list reply: %w", err)
	}

	return parsed.Images, nil
}

// Mach-O constants needed for the in-memory symbol scan. The images live in
// the dyld shared cache, not on disk, so debug/macho's file reader cannot
// be used; the layout constants are mirrored here instead.
const (
	machHeader64Size = 32
	machMagic64      = 0xfeedfacf

	lcSegment64 = 0x19
	lcSymtab    = 0x02

	nlist64Size = 16
	nStab       = 0xe0
)

type segment64 struct {
	name    string
	vmaddr  uint64
	fileoff uint64
}

// readChunked reads a large region in packet-sized pieces; a short read
// truncates the result rather than failing.
func (cl *Client) readChunked(addr uint64, n int) ([]byte, error) {
	const chunk = 4096

	out := make([]byte, 0, n)

	for len(out) < n {
		want := n - len(out)
		if want > chunk {
			want = chunk
		}

		buf := make([]byte, want)

		got, err := cl.ReadMemory(addr+uint64(len(out)), buf)
		if err != nil {
			if len(out) == 0 {
				return nil, err
			}

			break
		}

		out = append(out, buf[:got]...)

		if got < want {
			break
		}
	}

	return out, nil
}

// ResolveSymbols scans the symbol table of the image at loadAddr for the
// given symbol names and returns name → address for every one found,
// rebased by the image's slide.
func (cl *Client) ResolveSymbols(loadAddr uint64, names []string) (map[string]uint64, error) {
	header := make([]byte, machHeader64Size)
	if _, err := cl.ReadMemory(loadAddr, header); err != nil {
		return nil, fmt.Errorf("failed to read mach header at %#x: %w", loadAddr, err)
	}

	if magic := binary.LittleEndian.Uint32(header[0:4]); magic != machMagic64 {
		return nil, fmt.Errorf("no 64-bit mach header at %#x (magic %#x)", loadAddr, magic)
	}

	ncmds := binary.LittleEndian.Uint32(header[16:20])
	sizeofcmds := binary.LittleEndian.Uint32(header[20:24])

	cmds := make([]byte, sizeofcmds)
	if _, err := cl.ReadMemory(loadAddr+machHeader64Size, cmds); err != nil {
		return nil, fmt.Errorf("failed to read load commands at %#x: %w", loadAddr, err)
	}

	var (
		text, linkedit *segment64
		symoff, nsyms  uint32
		stroff, strsz  uint32
	)

	off := 0

	for i := uint32(0); i < ncmds && off+8 <= len(cmds); i++ {
		cmd := binary.LittleEndian.Uint32(cmds[off : off+4])
		cmdsize := int(binary.LittleEndian.Uint32(cmds[off+4 : off+8]))

		if cmdsize < 8 || off+cmdsize > len(cmds) {
			break
		}

		body := cmds[off : off+cmdsize]

		switch cmd {
		case lcSegment64:
			seg := &segment64{
				name:    string(bytes.TrimRight(body[8:24], "\x00")),
				vmaddr:  binary.LittleEndian.Uint64(body[24:32]),
				fileoff: binary.LittleEndian.Uint64(body[40:48]),
			}

			switch seg.name {
			case "__TEXT":
				text = seg
			case "__LINKEDIT":
				linkedit = seg
			}
		case lcSymtab:
			symoff = binary.LittleEndian.Uint32(body[8:12])
			nsyms = binary.LittleEndian.Uint32(body[12:16])
			stroff = binary.LittleEndian.Uint32(body[16:20])
			strsz = binary.LittleEndian.Uint32(body[20:24])
		}

		off += cmdsize
	}

	if text == nil || linkedit == nil || nsyms == 0 {
		return nil, fmt.Errorf("image at %#x has no usable symbol table", loadAddr)
	}

	// The slide rebases file-relative vm addresses to where dyld actually
	// mapped the image.
	slide := loadAddr - text.vmaddr

	symAddr := linkedit.vmaddr + slide + uint64(symoff) - linkedit.fileoff
	strAddr := linkedit.vmaddr + slide + uint64(stroff) - linkedit.fileoff

	strtab, err := cl.readChunked(strAddr, int(strsz))
	if err != nil {
		return nil, fmt.Errorf("failed to read string table: %w", err)
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	found := make(map[string]uint64)

	// Scan the nlist entries in batches to bound packet sizes.
	const batch = 256

	for base := uint32(0); base < nsyms; base += batch {
		n := nsyms - base
		if n > batch {
			n = batch
		}

		raw := make([]byte, int(n)*nlist64Size)
		if _, err := cl.ReadMemory(symAddr+uint64(base)*nlist64Size, raw); err != nil {
			return nil, fmt.Errorf("failed to read symbol table batch at %d: %w", base, err)
		}

		for i := 0; i < int(n); i++ {
			entry := raw[i*nlist64Size : (i+1)*nlist64Size]

			strx := binary.LittleEndian.Uint32(entry[0:4])
			ntype := entry[4]
			value := binary.LittleEndian.Uint64(entry[8:16])

			if ntype&nStab != 0 || strx == 0 || int(strx) >= len(strtab) {
				continue
			}

			end := bytes.IndexByte(strtab[strx:], 0)
			if end < 0 {
				continue
			}

			name := string(strtab[strx : strx+uint32(end)])
			if !wanted[name] || value == 0 {
				continue
			}

			found[name] = value + slide
		}

		if len(found) == len(names) {
			break
		}
	}

	return found, nil
}
