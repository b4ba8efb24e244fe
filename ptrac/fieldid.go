/*
 * fieldid.go, part of gomcnp.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ptrac

import (
	"strconv"

	mcnp "github.com/rmera/gomcnp"
)

// FieldIDTableVersion names the revision of the PTRAC format the identifier
// table follows.
const FieldIDTableVersion = "MCNP6 PTRAC ASCII, 28 identifiers"

// FieldID identifies a variable in a PTRAC event record.
type FieldID int

const (
	FieldNPS FieldID = iota + 1
	FieldFirstEventType
	FieldNPSCell //NCL in the NPS line
	FieldNSF
	FieldJPTAL
	FieldTAL
	FieldNextEventType
	FieldNode
	FieldSource //NSR
	FieldNXS
	FieldNTYN //NTYN/MTP
	FieldSurface
	FieldAngle
	FieldTermination
	FieldBranch
	FieldParticle //IPT
	FieldCell     //NCL
	FieldMaterial //MAT
	FieldNCP
	FieldX
	FieldY
	FieldZ
	FieldU
	FieldV
	FieldW
	FieldEnergy
	FieldWeight
	FieldTime
)

var fieldNames = [...]string{
	FieldNPS:            "NPS",
	FieldFirstEventType: "first event type",
	FieldNPSCell:        "NCL",
	FieldNSF:            "NSF",
	FieldJPTAL:          "JPTAL",
	FieldTAL:            "TAL",
	FieldNextEventType:  "next event type",
	FieldNode:           "NODE",
	FieldSource:         "NSR",
	FieldNXS:            "NXS",
	FieldNTYN:           "NTYN/MTP",
	FieldSurface:        "Surface number",
	FieldAngle:          "angle with surface normal",
	FieldTermination:    "termination type",
	FieldBranch:         "branch number for this history",
	FieldParticle:       "IPT",
	FieldCell:           "NCL",
	FieldMaterial:       "MAT",
	FieldNCP:            "NCP",
	FieldX:              "XXX",
	FieldY:              "YYY",
	FieldZ:              "ZZZ",
	FieldU:              "UUU",
	FieldV:              "VVV",
	FieldW:              "WWW",
	FieldEnergy:         "ERG",
	FieldWeight:         "WGT",
	FieldTime:           "TME",
}

// ParseFieldID returns the FieldID for the integer identifier id.
func ParseFieldID(id int64) (FieldID, error) {
	if id < int64(FieldNPS) || id > int64(FieldTime) {
		return 0, mcnp.Errorf(mcnp.ErrUnknownFieldID, strconv.FormatInt(id, 10), "identifiers go from 1 to %d (%s)", int(FieldTime), FieldIDTableVersion)
	}
	return FieldID(id), nil
}

// String returns the name MCNP gives to the variable.
func (f FieldID) String() string {
	if f < FieldNPS || f > FieldTime {
		return "FieldID(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// Category is the kind of a PTRAC event.
type Category int

const (
	CategoryNPS Category = iota
	CategorySource
	CategoryBank
	CategorySurface
	CategoryCollision
	CategoryTermination
	//CategoryFinal is not an event. It is the next-event category that ends a history.
	CategoryFinal
)

// categories lists the categories in the order their layouts appear in the header.
var categories = [...]Category{CategoryNPS, CategorySource, CategoryBank, CategorySurface, CategoryCollision, CategoryTermination}

var categoryNames = [...]string{
	CategoryNPS:         "nps",
	CategorySource:      "source",
	CategoryBank:        "bank",
	CategorySurface:     "surface",
	CategoryCollision:   "collision",
	CategoryTermination: "termination",
	CategoryFinal:       "final",
}

func (c Category) String() string {
	if c < CategoryNPS || c > CategoryFinal {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// ParseCategory returns the category with the given name, as returned by String.
// "initial source" is accepted for the source category.
func ParseCategory(name string) (Category, bool) {
	if name == "initial source" {
		return CategorySource, true
	}
	for i, v := range categoryNames {
		if v == name {
			return Category(i), true
		}
	}
	return 0, false
}

// Keyword is one of the PTRAC card keywords whose values are echoed in the header.
type Keyword int

const (
	KeywordBuffer Keyword = iota + 1
	KeywordCell
	KeywordEvent
	KeywordFile
	KeywordFilter
	KeywordMax
	KeywordMenp
	KeywordNPS
	KeywordSurface
	KeywordTally
	KeywordType
	KeywordValue
	KeywordWrite
	KeywordUnknown
)

var keywordNames = [...]string{
	KeywordBuffer:  "Buffer",
	KeywordCell:    "Cell",
	KeywordEvent:   "Event",
	KeywordFile:    "File",
	KeywordFilter:  "Filter",
	KeywordMax:     "Max",
	KeywordMenp:    "Menp",
	KeywordNPS:     "NPS",
	KeywordSurface: "Surface",
	KeywordTally:   "Tally",
	KeywordType:    "Type",
	KeywordValue:   "Value",
	KeywordWrite:   "Write",
	KeywordUnknown: "unknown",
}

func (k Keyword) String() string {
	if k < KeywordBuffer || k > KeywordUnknown {
		return "Keyword(" + strconv.Itoa(int(k)) + ")"
	}
	return keywordNames[k]
}

func parseKeyword(idx int) (Keyword, error) {
	if idx < int(KeywordBuffer) || idx > int(KeywordUnknown) {
		return 0, mcnp.Errorf(mcnp.ErrUnknownKeyword, strconv.Itoa(idx), "")
	}
	return Keyword(idx), nil
}
