// This file is part of gme8.
//
// gme8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gme8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gme8.  If not, see <https://www.gnu.org/licenses/>.


package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// the length of the buffer. the first sha1.Size bytes are the value of the
// previous digest
const audioBufferLength = 1024 + sha1.Size

const audioBufferStart = sha1.Size

// Audio digests a stream of 16 bit samples.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{
		buffer: make([]uint8, audioBufferLength),
	}
	dig.Reset()
	return dig
}

func (dig *Audio) String() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Hash returns the current digest value. Samples not yet filling a block are
// included.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return dig.String()
}

// Reset the digest value to zero.
func (dig *Audio) Reset() {
	dig.digest = [sha1.Size]byte{}
	dig.bufferCt = audioBufferStart
}

// SetAudio adds the samples to the digest. Samples are clipped to 16 bits
// in the same way as the wavwriter package.
func (dig *Audio) SetAudio(samples []int) error {
	for _, s := range samples {
		if s > 32767 {
			s = 32767
		} else if s < -32768 {
			s = -32768
		}
		binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt:], uint16(int16(s)))
		dig.bufferCt += 2
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}
	return nil
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
