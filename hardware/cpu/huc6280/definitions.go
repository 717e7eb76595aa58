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

package huc6280

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jetsetilly/gme8/hardware/cpu/instructions"
)

//go:embed instructions.csv
var instructionsCSV string

var definitions = instructions.MustParse(instructionsCSV)

var cycles = definitions.Cycles()

// Definitions returns the opcode table of the CPU.
func Definitions() *instructions.Table {
	return definitions
}

// IllegalOpcode is an undefined single byte opcode. Use it as the fill value
// of unmapped memory.
const IllegalOpcode = 0x33

type operation uint8

const (
	opIllegal operation = iota
	opNOP
	opLDA
	opLDX
	opLDY
	opSTA
	opSTX
	opSTY
	opSTZ
	opADC
	opSBC
	opAND
	opORA
	opEOR
	opCMP
	opCPX
	opCPY
	opBIT
	opTST
	opTSB
	opTRB
	opRMB
	opSMB
	opINC
	opDEC
	opASL
	opLSR
	opROL
	opROR
	opINX
	opINY
	opDEX
	opDEY
	opTAX
	opTAY
	opTXA
	opTYA
	opTSX
	opTXS
	opSXY
	opSAX
	opSAY
	opCLA
	opCLX
	opCLY
	opPHA
	opPHX
	opPHY
	opPHP
	opPLA
	opPLX
	opPLY
	opPLP
	opCLC
	opSEC
	opCLI
	opSEI
	opCLD
	opSED
	opCLV
	opJMP
	opJSR
	opBSR
	opRTS
	opRTI
	opBRK
	opBranch
	opBRA
	opBBR
	opBBS
	opTAM
	opTMA
	opST0
	opST1
	opST2
	opBlock
	opCSL
	opCSH
	opSET
)

var operationNames = map[string]operation{
	"NOP": opNOP, "LDA": opLDA, "LDX": opLDX, "LDY": opLDY,
	"STA": opSTA, "STX": opSTX, "STY": opSTY, "STZ": opSTZ,
	"ADC": opADC, "SBC": opSBC, "AND": opAND, "ORA": opORA, "EOR": opEOR,
	"CMP": opCMP, "CPX": opCPX, "CPY": opCPY,
	"BIT": opBIT, "TST": opTST, "TSB": opTSB, "TRB": opTRB,
	"INC": opINC, "DEC": opDEC, "ASL": opASL, "LSR": opLSR, "ROL": opROL, "ROR": opROR,
	"INX": opINX, "INY": opINY, "DEX": opDEX, "DEY": opDEY,
	"TAX": opTAX, "TAY": opTAY, "TXA": opTXA, "TYA": opTYA, "TSX": opTSX, "TXS": opTXS,
	"SXY": opSXY, "SAX": opSAX, "SAY": opSAY, "CLA": opCLA, "CLX": opCLX, "CLY": opCLY,
	"PHA": opPHA, "PHX": opPHX, "PHY": opPHY, "PHP": opPHP,
	"PLA": opPLA, "PLX": opPLX, "PLY": opPLY, "PLP": opPLP,
	"CLC": opCLC, "SEC": opSEC, "CLI": opCLI, "SEI": opSEI, "CLD": opCLD, "SED": opSED, "CLV": opCLV,
	"JMP": opJMP, "JSR": opJSR, "BSR": opBSR, "RTS": opRTS, "RTI": opRTI, "BRK": opBRK,
	"BPL": opBranch, "BMI": opBranch, "BVC": opBranch, "BVS": opBranch,
	"BCC": opBranch, "BCS": opBranch, "BNE": opBranch, "BEQ": opBranch,
	"BRA": opBRA,
	"TAM": opTAM, "TMA": opTMA, "ST0": opST0, "ST1": opST1, "ST2": opST2,
	"TII": opBlock, "TDD": opBlock, "TIN": opBlock, "TIA": opBlock, "TAI": opBlock,
	"CSL": opCSL, "CSH": opCSH, "SET": opSET,
}

var operations [256]operation

func init() {
	for i, d := range definitions {
		if d.Illegal {
			operations[i] = opIllegal
			continue
		}

		// the bit instructions have the bit number in the mnemonic
		var op operation
		var ok bool
		switch {
		case strings.HasPrefix(d.Mnemonic, "RMB"):
			op, ok = opRMB, true
		case strings.HasPrefix(d.Mnemonic, "SMB"):
			op, ok = opSMB, true
		case strings.HasPrefix(d.Mnemonic, "BBR"):
			op, ok = opBBR, true
		case strings.HasPrefix(d.Mnemonic, "BBS"):
			op, ok = opBBS, true
		default:
			op, ok = operationNames[d.Mnemonic]
		}
		if !ok {
			panic(fmt.Sprintf("huc6280: no operation for %s", d.Mnemonic))
		}
		operations[i] = op
	}
}
