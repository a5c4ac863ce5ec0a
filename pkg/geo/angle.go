package geo

import (
	"math"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
)

/*
BearingTo. menghitung sudut initial bearing untuk edge (p1,p2).
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {

	dLon := util.DegreeToRadians(p2Lon - p1Lon)

	lat1 := util.DegreeToRadians(p1Lat)
	lat2 := util.DegreeToRadians(p2Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := math.Mod(util.RadiansToDegree(math.Atan2(y, x))+360, 360.0)

	return brng
}

// FinalBearing. bearing at p2 when arriving from p1, in degree
func FinalBearing(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {
	return math.Mod(BearingTo(p2Lat, p2Lon, p1Lat, p1Lon)+180, 360)
}

// DeltaBearing. signed difference (next - prev) in degree, normalized to (-180, 180].
// positive = right turn, negative = left turn.
func DeltaBearing(prevBearing, nextBearing float64) float64 {
	dif := nextBearing - prevBearing
	if dif > 180 {
		dif -= 360
	} else if dif <= -180 {
		dif += 360
	}
	return dif
}
