// Package domain models Japanese disaster information bulletins.
//
// # Data Sources
//
// Earthquake reports come from the P2P地震情報 (p2pquake) JSON API, which
// relays Japan Meteorological Agency (JMA) bulletins. Weather overviews,
// warning/advisory bulletins, tsunami lists, and volcano data come from the
// JMA bosai feeds at https://www.jma.go.jp/bosai/. Both feeds publish
// Japanese text; every user-facing field carries an optional *_translated
// sibling populated by the translation pipeline.
//
// # JMA Data Conventions
//
// Seismic intensity (震度):
//
//	The 10-grade scale 0, 1, 2, 3, 4, 5弱, 5強, 6弱, 6強, 7. The split
//	grades read "5 Lower" / "5 Upper" etc. in English. The p2pquake feed
//	encodes them as integers (45 = 5弱, 50 = 5強, ...), decoded by the
//	feed adapter.
//
// Tsunami status on an earthquake report:
//
//	One of なし (none), 不明 (unknown), 調査中 (under investigation),
//	若干の海面変動 (slight sea level change), 津波注意報 (advisory),
//	津波警報 (warning). なし is the only status treated as safe when
//	composing messages.
//
// Tsunami bulletin levels:
//
//	Derived from the bulletin kind names by substring: 大津波警報 →
//	major_warning, 津波警報 → warning, 津波注意報 → advisory, anything
//	else → none.
//
// Epicenter coordinates:
//
//	ISO 6709-style strings such as "+40.9+143.0-20000/": latitude and
//	longitude prefixed with sign, followed by depth in meters. Parsed by
//	[ParseEpicenterCoordinates].
//
// Warning codes:
//
//	Two-digit JMA codes. 02-08 are warnings (警報), 10-26 advisories
//	(注意報), 32-38 emergency warnings (特別警報). Only warnings with
//	status 発表 (announced) become alerts.
//
// Severity classification:
//
//	The four-level scale low < medium < high < extreme maps onto alert
//	types: extreme → special_warning, high → warning, medium → advisory,
//	low → watch.
//
// # ID Generation
//
// Alert IDs are "{areaCode}_{code}_{yyyyMMddHHmm}" built from the package
// clock, so two bulletins for the same code in the same minute collapse to
// one ID. Earthquake and tsunami IDs come from the upstream feeds.
package domain
