// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import "math"

// The merge step of the divide and conquer algorithm reduces to finding
// the dd roots of the secular equation
//
//	f(x) = 1/p + Σ_i z_i² / (d_i - x)
//
// where d_0 < d_1 < ... < d_{dd-1} are the surviving poles and p > 0.
// The interior roots interlace the poles and the last root lies in
// (d_{dd-1}, d_{dd-1}+p·‖z‖²). Each root has a private copy of the pole
// array, and the solvers below translate that copy in place so that on
// return d_i holds the distance d_i - x from the computed root. Working
// with pole distances instead of absolute positions is what keeps the
// later eigenvector reconstruction accurate when a root is very close
// to a pole.

// secularEval evaluates f and its derivative at the point reached by
// adding the correction cor to the current origin of the pole copy d.
// When modif is true the poles are shifted in place by cor.
//
// kind selects which poles enter the sums: 0 splits the sum at pole k
// with k itself included, 1 excludes pole k, and 2 excludes poles k and
// k+1 (excluded poles are still shifted when modif is true). gx, gdx
// accumulate the poles below the split, hx, hdx the poles above, and er
// is a running bound on the accumulated rounding error of the sums.
func secularEval(kind, k, dd int, d, z []float64, pinv, cor float64, modif bool) (fx, fdx, gx, gdx, hx, hdx, er float64) {
	var gout, hout int
	switch kind {
	case 0:
		gout = k + 1
		hout = k
	case 1:
		if modif {
			d[k] -= cor
		}
		gout = k
		hout = k
	default:
		if modif {
			d[k] -= cor
			d[k+1] -= cor
		}
		gout = k
		hout = k + 1
	}
	for i := 0; i < gout; i++ {
		tmp := d[i] - cor
		if modif {
			d[i] = tmp
		}
		zz := z[i]
		tmp = zz / tmp
		gx += zz * tmp
		gdx += tmp * tmp
		er += gx
	}
	er = math.Abs(er)
	for i := dd - 1; i > hout; i-- {
		tmp := d[i] - cor
		if modif {
			d[i] = tmp
		}
		zz := z[i]
		tmp = zz / tmp
		hx += zz * tmp
		hdx += tmp * tmp
		er += hx
	}
	fx = pinv + gx + hx
	fdx = gdx + hdx
	return fx, fdx, gx, gdx, hx, hdx, er
}

// secularSolve finds the root of the secular equation in the open
// interval (d[k], d[k+1]). d is the root's private pole copy and is
// translated in place, so on return d[i] = d_i - x. It reports whether
// the iteration converged within maxIters steps.
//
// The iteration follows the fixed-weights method: the root is bracketed
// by [lowb, uppb] around the nearer pole, each step fits a rational
// interpolant with two poles at d[k] and d[k+1] and either fixed or
// free weights, and a step leaving the bracket is replaced by a
// bisection of the remaining interval.
func secularSolve(dd int, d, z []float64, p float64, k int) (float64, bool) {
	var (
		fx, fdx, gx, gdx, hx, hdx, er float64
		aa, bb, cc, eta, tau, oldfx   float64
	)

	k1 := k + 1
	dk := d[k]
	dk1 := d[k1]
	x := (dk + dk1) / 2
	tau = dk1 - dk
	pinv := 1 / p

	// Initial guess from the quadratic that matches f at the interval
	// midpoint with both neighboring pole weights kept exact.
	cc, _, _, _, _, _, _ = secularEval(2, k, dd, d, z, pinv, x, false)
	gdx = z[k] * z[k]
	hdx = z[k1] * z[k1]
	fx = cc + 2*(hdx-gdx)/tau

	var lowb, uppb float64
	var up bool
	var kk int
	if fx > 0 {
		// Root is in the lower half; take d[k] as origin.
		lowb = 0
		uppb = tau / 2
		up = true
		kk = k
		aa = cc*tau + gdx + hdx
		bb = gdx * tau
		eta = math.Sqrt(math.Abs(aa*aa - 4*bb*cc))
		if aa > 0 {
			tau = 2 * bb / (aa + eta)
		} else {
			tau = (aa - eta) / (2 * cc)
		}
		x = dk + tau
	} else {
		// Root is in the upper half; take d[k+1] as origin.
		lowb = -tau / 2
		uppb = 0
		up = false
		kk = k1
		aa = cc*tau - gdx - hdx
		bb = hdx * tau
		eta = math.Sqrt(math.Abs(aa*aa + 4*bb*cc))
		if aa < 0 {
			tau = 2 * bb / (aa - eta)
		} else {
			tau = -(aa + eta) / (2 * cc)
		}
		x = dk1 + tau
	}

	origin := dk1
	if up {
		origin = dk
	}

	// Translate the pole copy to the origin, then to the guess. The
	// pole kk is excluded from the sums and its contribution is added
	// back separately from the translated distance, which is exact.
	secularEval(0, kk, dd, d, z, pinv, origin, true)
	fx, fdx, gx, gdx, hx, hdx, er = secularEval(1, kk, dd, d, z, pinv, tau, true)
	bb = z[kk]
	aa = bb / d[kk]
	fdx += aa * aa
	bb *= aa
	fx += bb
	er += 8*(hx-gx) + 2*pinv + 3*math.Abs(bb) + math.Abs(tau)*fdx

	if math.Abs(fx) <= eps*er {
		return x, true
	}

	// First correction step.
	if fx <= 0 {
		lowb = math.Max(lowb, tau)
	} else {
		uppb = math.Min(uppb, tau)
	}
	ddk := d[k]
	ddk1 := d[k1]
	if up {
		cc = fx - ddk1*fdx - (dk-dk1)*z[k]*z[k]/ddk/ddk
	} else {
		cc = fx - ddk*fdx - (dk1-dk)*z[k1]*z[k1]/ddk1/ddk1
	}
	aa = (ddk+ddk1)*fx - ddk*ddk1*fdx
	bb = ddk * ddk1 * fx
	if cc == 0 {
		if aa == 0 {
			if up {
				aa = z[k]*z[k] + ddk1*ddk1*(gdx+hdx)
			} else {
				aa = z[k1]*z[k1] + ddk*ddk*(gdx+hdx)
			}
		}
		eta = bb / aa
	} else {
		eta = math.Sqrt(math.Abs(aa*aa - 4*bb*cc))
		if aa <= 0 {
			eta = (aa - eta) / (2 * cc)
		} else {
			eta = 2 * bb / (aa + eta)
		}
	}
	if fx*eta >= 0 {
		// Wrong direction; fall back to a Newton step.
		eta = -fx / fdx
	}
	if tau+eta > uppb || tau+eta < lowb {
		if fx < 0 {
			eta = (uppb - tau) / 2
		} else {
			eta = (lowb - tau) / 2
		}
	}
	tau += eta
	x = origin + tau

	oldfx = fx
	fx, fdx, gx, gdx, hx, hdx, er = secularEval(1, kk, dd, d, z, pinv, eta, true)
	bb = z[kk]
	aa = bb / d[kk]
	fdx += aa * aa
	bb *= aa
	fx += bb
	er += 8*(hx-gx) + 2*pinv + 3*math.Abs(bb) + math.Abs(tau)*fdx

	cc = 1
	if up {
		cc = -1
	}
	fixed := cc*fx > math.Abs(oldfx)/10

	for i := 1; i < maxIters; i++ {
		if math.Abs(fx) <= eps*er {
			return x, true
		}
		if fx <= 0 {
			lowb = math.Max(lowb, tau)
		} else {
			uppb = math.Min(uppb, tau)
		}

		ddk = d[k]
		ddk1 = d[k1]
		if fixed {
			if up {
				cc = fx - ddk1*fdx - (dk-dk1)*z[k]*z[k]/ddk/ddk
			} else {
				cc = fx - ddk*fdx - (dk1-dk)*z[k1]*z[k1]/ddk1/ddk1
			}
		} else {
			if up {
				gdx += aa * aa
			} else {
				hdx += aa * aa
			}
			cc = fx - ddk*gdx - ddk1*hdx
		}
		aa = (ddk+ddk1)*fx - ddk*ddk1*fdx
		bb = ddk * ddk1 * fx
		if cc == 0 {
			if aa == 0 {
				if fixed {
					if up {
						aa = z[k]*z[k] + ddk1*ddk1*(gdx+hdx)
					} else {
						aa = z[k1]*z[k1] + ddk*ddk*(gdx+hdx)
					}
				} else {
					aa = ddk*ddk*gdx + ddk1*ddk1*hdx
				}
			}
			eta = bb / aa
		} else {
			eta = math.Sqrt(math.Abs(aa*aa - 4*bb*cc))
			if aa <= 0 {
				eta = (aa - eta) / (2 * cc)
			} else {
				eta = 2 * bb / (aa + eta)
			}
		}
		if fx*eta >= 0 {
			eta = -fx / fdx
		}
		if tau+eta > uppb || tau+eta < lowb {
			if fx < 0 {
				eta = (uppb - tau) / 2
			} else {
				eta = (lowb - tau) / 2
			}
		}
		tau += eta
		x = origin + tau

		oldfx = fx
		fx, fdx, gx, gdx, hx, hdx, er = secularEval(1, kk, dd, d, z, pinv, eta, true)
		bb = z[kk]
		aa = bb / d[kk]
		fdx += aa * aa
		bb *= aa
		fx += bb
		er += 8*(hx-gx) + 2*pinv + 3*math.Abs(bb) + math.Abs(tau)*fdx

		// Swap between fixed and free weights when the iteration
		// stagnates on one side of the root.
		if fx*oldfx > 0 && math.Abs(fx) > math.Abs(oldfx)/10 {
			fixed = !fixed
		}
	}
	return x, false
}

// secularSolveLast finds the root of the secular equation beyond the
// largest pole, in (d[dd-1], d[dd-1]+p·‖z‖²). As in secularSolve, d is
// the root's private pole copy and is translated in place. dd must be
// at least 2; the single-pole case has a closed-form root.
func secularSolveLast(dd int, d, z []float64, p float64) (float64, bool) {
	var (
		fx, gx, gdx, hx, hdx, er float64
		aa, bb, cc, eta, tau          float64
	)

	k := dd - 1
	km1 := dd - 2
	dk := d[k]
	dkm1 := d[km1]
	x := dk + p/2
	pinv := 1 / p

	// Initial guess from the quadratic that matches f at d[dd-1]+p/2
	// with the two largest pole weights kept exact.
	cc, _, _, _, _, _, _ = secularEval(2, km1, dd, d, z, pinv, x, false)
	gdx = z[km1] * z[km1]
	hdx = z[k] * z[k]
	fx = cc + gdx/(dkm1-x) - 2*hdx*pinv

	var lowb, uppb float64
	if fx > 0 {
		lowb = 0
		uppb = p / 2
		tau = dk - dkm1
		aa = -cc*tau + gdx + hdx
		bb = hdx * tau
		eta = math.Sqrt(aa*aa + 4*bb*cc)
		if aa < 0 {
			tau = 2 * bb / (eta - aa)
		} else {
			tau = (aa + eta) / (2 * cc)
		}
	} else {
		lowb = p / 2
		uppb = p
		eta = gdx/(dk-dkm1+p) + hdx/p
		if cc <= eta {
			tau = p
		} else {
			tau = dk - dkm1
			aa = -cc*tau + gdx + hdx
			bb = hdx * tau
			eta = math.Sqrt(aa*aa + 4*bb*cc)
			if aa < 0 {
				tau = 2 * bb / (eta - aa)
			} else {
				tau = (aa + eta) / (2 * cc)
			}
		}
	}
	x = dk + tau

	// Translate the pole copy to d[dd-1], then to the guess.
	secularEval(0, km1, dd, d, z, pinv, dk, true)
	fx, _, gx, gdx, hx, hdx, er = secularEval(0, km1, dd, d, z, pinv, tau, true)
	er += math.Abs(tau)*(hdx+gdx) - 8*(hx+gx) - hx + pinv

	if math.Abs(fx) <= eps*er {
		return x, true
	}

	// First correction step.
	if fx <= 0 {
		lowb = math.Max(lowb, tau)
	} else {
		uppb = math.Min(uppb, tau)
	}
	ddk := d[k]
	ddkm1 := d[km1]
	cc = math.Abs(fx - ddkm1*gdx - ddk*hdx)
	aa = (ddk+ddkm1)*fx - ddk*ddkm1*(gdx+hdx)
	bb = ddk * ddkm1 * fx
	if cc == 0 {
		eta = uppb - tau
	} else {
		eta = math.Sqrt(math.Abs(aa*aa - 4*bb*cc))
		if aa >= 0 {
			eta = (aa + eta) / (2 * cc)
		} else {
			eta = 2 * bb / (aa - eta)
		}
	}
	if fx*eta > 0 {
		eta = -fx / (gdx + hdx)
	}
	if tau+eta > uppb || tau+eta < lowb {
		if fx < 0 {
			eta = (uppb - tau) / 2
		} else {
			eta = (lowb - tau) / 2
		}
	}
	tau += eta
	x = dk + tau
	fx, _, gx, gdx, hx, hdx, er = secularEval(0, km1, dd, d, z, pinv, eta, true)
	er += math.Abs(tau)*(hdx+gdx) - 8*(hx+gx) - hx + pinv

	for i := 1; i < maxIters; i++ {
		if math.Abs(fx) <= eps*er {
			return x, true
		}
		if fx <= 0 {
			lowb = math.Max(lowb, tau)
		} else {
			uppb = math.Min(uppb, tau)
		}

		ddk = d[k]
		ddkm1 = d[km1]
		cc = fx - ddkm1*gdx - ddk*hdx
		aa = (ddk+ddkm1)*fx - ddk*ddkm1*(gdx+hdx)
		bb = ddk * ddkm1 * fx
		eta = math.Sqrt(math.Abs(aa*aa - 4*bb*cc))
		if aa >= 0 {
			eta = (aa + eta) / (2 * cc)
		} else {
			eta = 2 * bb / (aa - eta)
		}
		if fx*eta > 0 {
			eta = -fx / (gdx + hdx)
		}
		if tau+eta > uppb || tau+eta < lowb {
			if fx < 0 {
				eta = (uppb - tau) / 2
			} else {
				eta = (lowb - tau) / 2
			}
		}
		tau += eta
		x = dk + tau
		fx, _, gx, gdx, hx, hdx, er = secularEval(0, km1, dd, d, z, pinv, eta, true)
		er += math.Abs(tau)*(hdx+gdx) - 8*(hx+gx) - hx + pinv
	}
	return x, false
}
