package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// enumMeta carries the three identities every catalog variant has: the
// numeric wire code, the lowercase query-parameter name and the API enum
// string. Order is the display order within the catalog.
type enumMeta struct {
	Code     int
	Name     string
	FullName string
	Order    int
}

func (m enumMeta) EnumCode() int        { return m.Code }
func (m enumMeta) EnumName() string     { return m.Name }
func (m enumMeta) EnumFullName() string { return m.FullName }

type Enum interface {
	EnumCode() int
	EnumName() string
	EnumFullName() string
}

// NotFoundError is returned by the By* lookups when no variant matches.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("enum variant not found: %s", e.Key)
}

// ByCode returns the variant with the given wire code or a NotFoundError.
func ByCode[T Enum](table []T, code int) (T, error) {
	if v, ok := FindByCode(table, code); ok {
		return v, nil
	}
	var zero T
	return zero, &NotFoundError{Key: strconv.Itoa(code)}
}

// ByName returns the variant with the given name, case-insensitively.
func ByName[T Enum](table []T, name string) (T, error) {
	if v, ok := FindByName(table, name); ok {
		return v, nil
	}
	var zero T
	return zero, &NotFoundError{Key: name}
}

// ByFullName returns the variant with the given API enum string,
// case-insensitively.
func ByFullName[T Enum](table []T, fullName string) (T, error) {
	if v, ok := FindByFullName(table, fullName); ok {
		return v, nil
	}
	var zero T
	return zero, &NotFoundError{Key: fullName}
}

// FindByCode is the comma-ok form of ByCode, for callers that tolerate
// unknown codes.
func FindByCode[T Enum](table []T, code int) (T, bool) {
	for _, v := range table {
		if v.EnumCode() == code {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func FindByName[T Enum](table []T, name string) (T, bool) {
	for _, v := range table {
		if strings.EqualFold(v.EnumName(), name) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func FindByFullName[T Enum](table []T, fullName string) (T, bool) {
	for _, v := range table {
		if strings.EqualFold(v.EnumFullName(), fullName) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Region is a Battle.net region.
type Region struct {
	enumMeta
}

var Regions = []Region{
	{enumMeta{Code: 1, Name: "us", FullName: "US", Order: 1}},
	{enumMeta{Code: 2, Name: "eu", FullName: "EU", Order: 2}},
	{enumMeta{Code: 3, Name: "kr", FullName: "KR", Order: 3}},
	{enumMeta{Code: 5, Name: "cn", FullName: "CN", Order: 4}},
}

// Race declaration order doubles as the tie-break order for FavoriteRace.
type Race struct {
	enumMeta
}

var Races = []Race{
	{enumMeta{Code: 1, Name: "terran", FullName: "TERRAN", Order: 1}},
	{enumMeta{Code: 2, Name: "protoss", FullName: "PROTOSS", Order: 2}},
	{enumMeta{Code: 3, Name: "zerg", FullName: "ZERG", Order: 3}},
	{enumMeta{Code: 4, Name: "random", FullName: "RANDOM", Order: 4}},
}

// League is a ranked league. Short is the ladder query-parameter name.
type League struct {
	enumMeta
	Short string
}

var Leagues = []League{
	{enumMeta{Code: 0, Name: "bronze", FullName: "BRONZE", Order: 1}, "bro"},
	{enumMeta{Code: 1, Name: "silver", FullName: "SILVER", Order: 2}, "sil"},
	{enumMeta{Code: 2, Name: "gold", FullName: "GOLD", Order: 3}, "gol"},
	{enumMeta{Code: 3, Name: "platinum", FullName: "PLATINUM", Order: 4}, "pla"},
	{enumMeta{Code: 4, Name: "diamond", FullName: "DIAMOND", Order: 5}, "dia"},
	{enumMeta{Code: 5, Name: "master", FullName: "MASTER", Order: 6}, "mas"},
	{enumMeta{Code: 6, Name: "grandmaster", FullName: "GRANDMASTER", Order: 7}, "gra"},
}

// LeagueTier is a sub-division within a league, 0-based on the wire and
// displayed 1-based.
type LeagueTier struct {
	enumMeta
}

var LeagueTiers = []LeagueTier{
	{enumMeta{Code: 0, Name: "first", FullName: "FIRST", Order: 1}},
	{enumMeta{Code: 1, Name: "second", FullName: "SECOND", Order: 2}},
	{enumMeta{Code: 2, Name: "third", FullName: "THIRD", Order: 3}},
}

// TeamFormat is a ladder queue. FullName is the queue parameter value.
type TeamFormat struct {
	enumMeta
	MemberCount int
}

var TeamFormats = []TeamFormat{
	{enumMeta{Code: 201, Name: "1v1", FullName: "LOTV_1V1", Order: 1}, 1},
	{enumMeta{Code: 202, Name: "2v2", FullName: "LOTV_2V2", Order: 2}, 2},
	{enumMeta{Code: 203, Name: "3v3", FullName: "LOTV_3V3", Order: 3}, 3},
	{enumMeta{Code: 204, Name: "4v4", FullName: "LOTV_4V4", Order: 4}, 4},
	{enumMeta{Code: 206, Name: "archon", FullName: "LOTV_ARCHON", Order: 5}, 2},
}

type TeamType struct {
	enumMeta
}

var TeamTypes = []TeamType{
	{enumMeta{Code: 0, Name: "arranged", FullName: "ARRANGED", Order: 1}},
	{enumMeta{Code: 1, Name: "random", FullName: "RANDOM", Order: 2}},
}

// The only queue this service reads.
var (
	Queue1v1         = TeamFormats[0]
	TeamTypeArranged = TeamTypes[0]
)
