// Package bulletin models decoded aviation weather bulletin data.
//
// # Report kinds
//
// METAR: routine surface observation for a single instant, issued hourly or
// when conditions change. TAF: terminal aerodrome forecast, a multi-period
// forecast covering roughly 24-30 hours around an airport.
//
// # Wire conventions
//
// Reports are space-separated token streams in a fixed ordering:
//
//	KJFK 032151Z 16008KT 10SM FEW034 BKN250 27/23 A3013 RMK AO2 SLP201
//
//	ident    4-letter ICAO station, first token.
//	time     ddhhmmZ day-of-month + UTC hour + minute.
//	wind     dddssKT direction + speed, optional Ggg gust, VRB variable,
//	         units KT, MPS, KMH, or MPH. 320V040 variable direction range.
//	vis      10SM statute miles (possibly fractional: 1 1/2SM), 9999 meters,
//	         P/M prefixes for greater/less than, CAVOK for clear.
//	clouds   FEW/SCT/BKN/OVC + 3-digit base in hundreds of feet; VV vertical
//	         visibility; optional type modifier (CB, TCU).
//	temps    TT/DD temperature/dewpoint, M prefix for below zero.
//	altim    Annnn inches of mercury (30.13) or Qnnnn hectopascals.
//
// TAF bodies repeat the wind/vis/cloud groups per time period, introduced by
// FM (from), BECMG (becoming), TEMPO/INTER (temporary), or PROBnn markers,
// with dddd/dddd validity ranges.
//
// Real-world feeds misspell, glue, split, and drop these tokens constantly.
// The sanitize package repairs what it can and records every change in a
// Sanitization log; fields that survive as unparseable degrade to nil rather
// than failing the report.
//
// # Units
//
// Unit defaults follow the station's regional dialect (North American vs
// International) and are overridden whenever a token carries an explicit
// unit. A Units value is mutated during extraction and frozen afterward.
//
// # Flight categories
//
// VFR/MVFR/IFR/LIFR classification derives from visibility and ceiling (the
// lowest broken, overcast, or vertical-visibility layer). See FlightRulesUnder.
package bulletin
