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

package mos6502

import (
	_ "embed"
	"fmt"

	"github.com/jetsetilly/gme8/hardware/cpu/instructions"
)

//go:embed instructions.csv
var instructionsCSV string

var definitions = instructions.MustParse(instructionsCSV)

// base cost of every opcode
var cycles = definitions.Cycles()

// Definitions returns the opcode table of the CPU.
func Definitions() *instructions.Table {
	return definitions
}

// IllegalOpcode is a single byte opcode that the CPU treats as illegal. Use
// it as the fill value of unmapped memory.
const IllegalOpcode = 0x02

// the operation performed by an opcode. the addressing mode is taken from the
// definition
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
	opADC
	opSBC
	opAND
	opORA
	opEOR
	opCMP
	opCPX
	opCPY
	opBIT
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
	opPHA
	opPHP
	opPLA
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
	opRTS
	opRTI
	opBRK
	opBranch
	opLAX
	opSAX
	opDCP
	opISC
	opSLO
	opRLA
	opSRE
	opRRA
	opANC
	opALR
	opARR
	opSBX
)

var operationNames = map[string]operation{
	"NOP": opNOP, "LDA": opLDA, "LDX": opLDX, "LDY": opLDY,
	"STA": opSTA, "STX": opSTX, "STY": opSTY,
	"ADC": opADC, "SBC": opSBC, "AND": opAND, "ORA": opORA, "EOR": opEOR,
	"CMP": opCMP, "CPX": opCPX, "CPY": opCPY, "BIT": opBIT,
	"INC": opINC, "DEC": opDEC, "ASL": opASL, "LSR": opLSR, "ROL": opROL, "ROR": opROR,
	"INX": opINX, "INY": opINY, "DEX": opDEX, "DEY": opDEY,
	"TAX": opTAX, "TAY": opTAY, "TXA": opTXA, "TYA": opTYA, "TSX": opTSX, "TXS": opTXS,
	"PHA": opPHA, "PHP": opPHP, "PLA": opPLA, "PLP": opPLP,
	"CLC": opCLC, "SEC": opSEC, "CLI": opCLI, "SEI": opSEI, "CLD": opCLD, "SED": opSED, "CLV": opCLV,
	"JMP": opJMP, "JSR": opJSR, "RTS": opRTS, "RTI": opRTI, "BRK": opBRK,
	"BPL": opBranch, "BMI": opBranch, "BVC": opBranch, "BVS": opBranch,
	"BCC": opBranch, "BCS": opBranch, "BNE": opBranch, "BEQ": opBranch,
	"LAX": opLAX, "SAX": opSAX, "DCP": opDCP, "ISC": opISC,
	"SLO": opSLO, "RLA": opRLA, "SRE": opSRE, "RRA": opRRA,
	"ANC": opANC, "ALR": opALR, "ARR": opARR, "SBX": opSBX,
}

var operations [256]operation

func init() {
	for i, d := range definitions {
		if d.Illegal {
			operations[i] = opIllegal
			continue
		}
		op, ok := operationNames[d.Mnemonic]
		if !ok {
			panic(fmt.Sprintf("mos6502: no operation for %s", d.Mnemonic))
		}
		operations[i] = op
	}
}
