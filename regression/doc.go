// Package regression defines the estimator contracts used by reduction
// forecasting and provides bundled estimators.
//
// Two contracts exist. Regressor is the tabular contract: a 2-D feature
// matrix in, one prediction per row out. TimeSeriesRegressor consumes 3-D
// window tensors directly, preserving the variable/lag structure.
//
// # Bundled Estimators
//
// LinearRegression fits ordinary least squares via QR factorization and
// supports multi-output targets:
//
//	reg := regression.NewLinearRegression()
//	reg.Fit(X, y)
//	pred, err := reg.Predict(Xnew)
//
// MeanRegressor is a constant baseline. Tabularizer adapts any tabular
// regressor to the time-series contract by flattening windows:
//
//	ts := regression.NewTabularizer(regression.NewLinearRegression())
//
// All estimators support Clone, returning an unfitted copy with the same
// configuration; reduction strategies clone before fitting so each horizon
// step owns an independent instance.
package regression
